// Package imagerole classifies product images by filename and picks hero and gallery images.
package imagerole

import (
	"fmt"

	"github.com/kctmenswear/catalog-importer/internal/domain"
	"github.com/kctmenswear/catalog-importer/internal/rules"
)

// Profile holds the classification rules and selection policy for one product kind.
type Profile struct {
	Kind         domain.ProductKind
	Rules        rules.List[domain.ImageRole]
	HeroPriority []domain.ImageRole
	GalleryCap   int
}

// ProfileSpec is the serialized form of a Profile.
type ProfileSpec struct {
	Rules        []rules.Spec       `yaml:"rules" validate:"required,min=1,dive"`
	HeroPriority []domain.ImageRole `yaml:"hero_priority" validate:"dive,required"`
	GalleryCap   int                `yaml:"gallery_cap" validate:"gte=0"`
}

// Compile builds a profile for kind from its spec.
func (s ProfileSpec) Compile(kind domain.ProductKind) (*Profile, error) {
	list, err := rules.Compile[domain.ImageRole](s.Rules)
	if err != nil {
		return nil, fmt.Errorf("%s profile: %w", kind, err)
	}
	for _, r := range list {
		if !r.Label.Valid() {
			return nil, fmt.Errorf("%s profile: unknown image role %q", kind, r.Label)
		}
	}
	for _, r := range s.HeroPriority {
		if !r.Valid() {
			return nil, fmt.Errorf("%s profile: unknown hero role %q", kind, r)
		}
	}
	return &Profile{
		Kind:         kind,
		Rules:        list,
		HeroPriority: s.HeroPriority,
		GalleryCap:   s.GalleryCap,
	}, nil
}

// Classify returns the role of filename. Unmatched names are unknown.
func (p *Profile) Classify(filename string) domain.ImageRole {
	if role, ok := p.Rules.First(filename); ok {
		return role
	}
	return domain.RoleUnknown
}

// Assign returns a copy of images with each role set from its filename.
// Roles already present are kept.
func (p *Profile) Assign(images []domain.ImageDescriptor) []domain.ImageDescriptor {
	out := make([]domain.ImageDescriptor, len(images))
	for i, img := range images {
		if img.Role == "" {
			img.Role = p.Classify(img.ImageName)
		}
		out[i] = img
	}
	return out
}

// Selection is the outcome of hero selection.
type Selection struct {
	Hero    *domain.ImageDescriptor
	Gallery []domain.ImageDescriptor
}

// Select picks the hero and the capped gallery from classified images.
//
// The hero is the first image holding the highest-priority role in HeroPriority.
// Without any eligible image the first image is used. The hero is removed from
// the gallery, which keeps the input order and is cut to GalleryCap entries.
func (p *Profile) Select(images []domain.ImageDescriptor) Selection {
	if len(images) == 0 {
		return Selection{}
	}

	heroIdx := 0
found:
	for _, role := range p.HeroPriority {
		for i, img := range images {
			if img.Role == role {
				heroIdx = i
				break found
			}
		}
	}

	hero := images[heroIdx]
	gallery := make([]domain.ImageDescriptor, 0, len(images)-1)
	for i, img := range images {
		if i == heroIdx {
			continue
		}
		if p.GalleryCap > 0 && len(gallery) == p.GalleryCap {
			break
		}
		gallery = append(gallery, img)
	}
	return Selection{Hero: &hero, Gallery: gallery}
}
