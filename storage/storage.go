package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Hamdan-B/FoodiesHub/pkg/apperr"

	"github.com/google/uuid"
)

// Kinds namespace uploaded objects by the entity they belong to.
const (
	KindStores = "stores"
	KindFoods  = "foods"
	KindRiders = "riders"
)

func ValidKind(kind string) bool {
	return kind == KindStores || kind == KindFoods || kind == KindRiders
}

// Uploader stores file bytes under a namespaced path and returns a
// public URL.
type Uploader interface {
	Upload(kind, originalName string, data []byte) (string, error)
}

// Disk writes uploads under Dir, served back at BaseURL/uploads/...
type Disk struct {
	Dir     string
	BaseURL string
}

func NewDisk(dir, baseURL string) *Disk { return &Disk{Dir: dir, BaseURL: baseURL} }

func (d *Disk) Upload(kind, originalName string, data []byte) (string, error) {
	if !ValidKind(kind) {
		return "", apperr.Validation("unknown upload kind")
	}
	if len(data) == 0 {
		return "", apperr.Validation("empty file")
	}

	if err := os.MkdirAll(filepath.Join(d.Dir, kind), 0o755); err != nil {
		return "", err
	}

	// timestamp + uuid keeps names collision-free across uploads of
	// the same source file
	name := fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), uuid.NewString(), filepath.Ext(originalName))
	path := filepath.Join(d.Dir, kind, name)

	// O_EXCL: an existing object must never be overwritten
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("%s/uploads/%s/%s", d.BaseURL, kind, name), nil
}
