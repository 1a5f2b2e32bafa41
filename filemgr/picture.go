package filemgr

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"

	"sudrsya/utils"

	"github.com/disintegration/imaging"
)

const productPicDir = "static/productpic"

func ensureDirExists(dir string) error {
	return os.MkdirAll(dir, 0755)
}

// SaveProductImage decodes an uploaded image, writes the original and a 300px
// thumbnail under the product picture directory, and returns the public path.
func SaveProductImage(header *multipart.FileHeader) (string, error) {
	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open image file: %w", err)
	}
	defer src.Close()

	img, err := imaging.Decode(src)
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	uniqueID := utils.GenerateID()
	fileName := uniqueID + ".jpg"

	originalPath := filepath.Join(productPicDir, fileName)
	thumbDir := filepath.Join(productPicDir, "thumb")
	thumbnailPath := filepath.Join(thumbDir, fileName)

	if err := ensureDirExists(productPicDir); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}
	if err := ensureDirExists(thumbDir); err != nil {
		return "", fmt.Errorf("failed to create thumbnail directory: %w", err)
	}

	if err := imaging.Save(img, originalPath); err != nil {
		return "", fmt.Errorf("failed to save original image: %w", err)
	}

	thumbImg := imaging.Resize(img, 300, 0, imaging.Lanczos)
	if err := imaging.Save(thumbImg, thumbnailPath); err != nil {
		return "", fmt.Errorf("failed to save thumbnail: %w", err)
	}

	return "/static/productpic/" + fileName, nil
}
