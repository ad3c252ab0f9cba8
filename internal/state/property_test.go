package state

import (
	"testing"

	"github.com/Limpiar-Hub/portal-core/internal/models"
)

func coverCount(images []models.PropertyImage) int {
	n := 0
	for _, img := range images {
		if img.IsCover {
			n++
		}
	}
	return n
}

func TestSetCoverImageScenario(t *testing.T) {
	d := NewPropertyDraft()
	d.AddImage(models.PropertyImage{URL: "a", IsCover: true})
	d.AddImage(models.PropertyImage{URL: "b", IsCover: false})
	d.SetCoverImage("b")

	images := d.Images()
	if len(images) != 2 {
		t.Fatalf("images=%d, want 2", len(images))
	}
	if images[0].URL != "a" || images[0].IsCover {
		t.Fatalf("image a wrong: %+v", images[0])
	}
	if images[1].URL != "b" || !images[1].IsCover {
		t.Fatalf("image b wrong: %+v", images[1])
	}
}

func TestAddImageCoverStaysUnique(t *testing.T) {
	d := NewPropertyDraft()
	d.AddImage(models.PropertyImage{URL: "a", IsCover: true})
	d.AddImage(models.PropertyImage{URL: "b", IsCover: true})

	if got := coverCount(d.Images()); got != 1 {
		t.Fatalf("covers=%d, want 1", got)
	}
	images := d.Images()
	if !images[1].IsCover {
		t.Fatalf("newest cover claim did not win")
	}
}

func TestSetCoverImageUnknownURL(t *testing.T) {
	d := NewPropertyDraft()
	d.AddImage(models.PropertyImage{URL: "a", IsCover: true})
	d.SetCoverImage("missing")

	if got := coverCount(d.Images()); got != 0 {
		t.Fatalf("covers=%d after unknown url, want 0", got)
	}
}

func TestRemoveImage(t *testing.T) {
	d := NewPropertyDraft()
	d.AddImage(models.PropertyImage{URL: "a"})
	d.AddImage(models.PropertyImage{URL: "b"})
	d.RemoveImage("a")

	images := d.Images()
	if len(images) != 1 || images[0].URL != "b" {
		t.Fatalf("remove left %+v", images)
	}
}
