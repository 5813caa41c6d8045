package sink

import (
	"fmt"
	"os"
	"path/filepath"

	"gocv.io/x/gocv"
)

// DefaultSnapshotDir is where face crops are written unless configured otherwise.
const DefaultSnapshotDir = "captured_faces"

// SnapshotWriter persists cropped face images.
type SnapshotWriter interface {
	// Save writes img under name and returns the path it was written to.
	Save(name string, img gocv.Mat) (string, error)
}

// DirSnapshots writes snapshots as image files into a directory.
// The file format follows the name's extension.
type DirSnapshots struct {
	dir string
}

// NewDirSnapshots creates dir if it does not exist.
func NewDirSnapshots(dir string) (*DirSnapshots, error) {
	if dir == "" {
		return nil, fmt.Errorf("snapshot directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create snapshot directory %s: %w", dir, err)
	}
	return &DirSnapshots{dir: dir}, nil
}

// Dir returns the snapshot directory.
func (s *DirSnapshots) Dir() string {
	return s.dir
}

// Save encodes img into dir/name.
func (s *DirSnapshots) Save(name string, img gocv.Mat) (string, error) {
	if img.Empty() {
		return "", fmt.Errorf("snapshot %s: image is empty", name)
	}

	path := filepath.Join(s.dir, name)
	if ok := gocv.IMWrite(path, img); !ok {
		return "", fmt.Errorf("failed to write snapshot %s", path)
	}
	return path, nil
}
