package images

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"campusrent/internal/domain"

	"github.com/google/uuid"
)

var ErrTooMany = errors.New("too many images")

// allowed upload extensions, matching what the web client produces
var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// References turns uploaded file names into stable reference strings.
// Storage itself is an external collaborator; the core only persists the
// references, capped at domain.MaxListingImages per listing.
func References(filenames []string) ([]string, error) {
	if len(filenames) > domain.MaxListingImages {
		return nil, ErrTooMany
	}

	refs := make([]string, 0, len(filenames))
	for _, name := range filenames {
		ext := strings.ToLower(path.Ext(name))
		if !allowedExt[ext] {
			return nil, fmt.Errorf("unsupported image type %q", ext)
		}
		refs = append(refs, "listings/"+uuid.New().String()+ext)
	}
	return refs, nil
}

// Merge combines kept references with newly generated ones, preserving
// order and re-checking the cap.
func Merge(kept, added []string) ([]string, error) {
	if len(kept)+len(added) > domain.MaxListingImages {
		return nil, ErrTooMany
	}
	out := make([]string, 0, len(kept)+len(added))
	out = append(out, kept...)
	out = append(out, added...)
	return out, nil
}
