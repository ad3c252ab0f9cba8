package state

import (
	"sync"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

// PropertyDraft is the normalized draft behind the property-creation
// wizard. Setters are direct; the only invariant the store enforces is
// that at most one image carries the cover flag.
type PropertyDraft struct {
	mu          sync.Mutex
	step        int
	category    string
	subCategory string
	title       string
	units       models.PropertyUnits
	location    models.PropertyLocation
	images      []models.PropertyImage
}

func NewPropertyDraft() *PropertyDraft {
	return &PropertyDraft{step: 1}
}

func (d *PropertyDraft) SetStep(step int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if step >= 1 {
		d.step = step
	}
}

func (d *PropertyDraft) SetCategory(category, subCategory string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.category = category
	d.subCategory = subCategory
}

func (d *PropertyDraft) SetTitle(title string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.title = title
}

func (d *PropertyDraft) SetUnits(units models.PropertyUnits) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.units = units
}

func (d *PropertyDraft) SetLocation(loc models.PropertyLocation) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.location = loc
}

// AddImage appends an image. If the new image claims the cover flag, any
// previous cover loses it.
func (d *PropertyDraft) AddImage(img models.PropertyImage) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if img.IsCover {
		for i := range d.images {
			d.images[i].IsCover = false
		}
	}
	d.images = append(d.images, img)
}

func (d *PropertyDraft) RemoveImage(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	kept := d.images[:0]
	for _, img := range d.images {
		if img.URL != url {
			kept = append(kept, img)
		}
	}
	d.images = kept
}

// SetCoverImage makes the image with the given url the sole cover. Every
// other image loses the flag whether or not the url is present.
func (d *PropertyDraft) SetCoverImage(url string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.images {
		d.images[i].IsCover = d.images[i].URL == url
	}
}

func (d *PropertyDraft) Images() []models.PropertyImage {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.PropertyImage(nil), d.images...)
}

type PropertySnapshot struct {
	Step        int
	Category    string
	SubCategory string
	Title       string
	Units       models.PropertyUnits
	Location    models.PropertyLocation
	Images      []models.PropertyImage
}

func (d *PropertyDraft) Snapshot() PropertySnapshot {
	d.mu.Lock()
	defer d.mu.Unlock()
	return PropertySnapshot{
		Step:        d.step,
		Category:    d.category,
		SubCategory: d.subCategory,
		Title:       d.title,
		Units:       d.units,
		Location:    d.location,
		Images:      append([]models.PropertyImage(nil), d.images...),
	}
}
