package qrcode

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	qr "github.com/skip2/go-qrcode"
	"pickuppoint/internal/entities"
)

const pngSize = 256

// Generator maps a package to a scannable confirmation URL and persists the
// rendered PNG artifact. Regenerating overwrites the previous artifact.
type Generator struct {
	repository    Repository
	publicBaseURL string
	artifactsDir  string
}

func New(repository Repository, publicBaseURL, artifactsDir string) *Generator {
	return &Generator{
		repository:    repository,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		artifactsDir:  artifactsDir,
	}
}

// ConfirmURL embeds the package id both in the path and as a query
// parameter, so extraction resolves it unambiguously either way.
func (g *Generator) ConfirmURL(packageID int64) string {
	return fmt.Sprintf("%s/packages/%d/confirm?package_id=%d", g.publicBaseURL, packageID, packageID)
}

func (g *Generator) Generate(ctx context.Context, packageID int64) (string, error) {
	png, err := qr.Encode(g.ConfirmURL(packageID), qr.Medium, pngSize)
	if err != nil {
		return "", fmt.Errorf("encode qr: %w", err)
	}

	if err := os.MkdirAll(g.artifactsDir, 0o750); err != nil {
		return "", fmt.Errorf("artifacts dir: %w", err)
	}

	path := filepath.Join(g.artifactsDir, fmt.Sprintf("package_%d.png", packageID))
	if err := os.WriteFile(path, png, 0o640); err != nil {
		return "", fmt.Errorf("write qr artifact: %w", err)
	}

	_, err = g.repository.Update(ctx, entities.PackageModify{
		ID:         &packageID,
		QrCodePath: &path,
	})
	if err != nil {
		return "", fmt.Errorf("persist qr path: %w", err)
	}

	return path, nil
}
