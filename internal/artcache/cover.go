package artcache

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Common cover art filenames to look for in album folders.
var coverArtFilenames = []string{
	"cover.jpg", "cover.jpeg", "cover.png",
	"folder.jpg", "folder.jpeg", "folder.png",
	"album.jpg", "album.jpeg", "album.png",
	"front.jpg", "front.jpeg", "front.png",
}

// ExtractCoverArt returns the cover image for an audio file: embedded art
// when the tags carry a picture, else a cover file next to it. Returns nil
// data when neither exists.
func ExtractCoverArt(path string) ([]byte, error) {
	if data := embeddedArt(path); data != nil {
		return data, nil
	}
	return folderArt(filepath.Dir(path))
}

// embeddedArt returns the picture from the file's tags. Unreadable tags are
// treated as no picture.
func embeddedArt(path string) []byte {
	f, err := os.Open(path)
	if err != nil {
		return nil
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil
	}
	if pic := m.Picture(); pic != nil && len(pic.Data) > 0 {
		return pic.Data
	}
	return nil
}

func folderArt(dir string) ([]byte, error) {
	for _, filename := range coverArtFilenames {
		for _, name := range []string{filename, strings.ToUpper(filename)} {
			data, err := os.ReadFile(filepath.Join(dir, name))
			if err == nil {
				return data, nil
			}
			if !os.IsNotExist(err) {
				return nil, err
			}
		}
	}
	return nil, nil
}
