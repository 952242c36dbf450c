package tui

import (
	"reflect"
	"testing"

	"github.com/winhop/winhop/internal/hint"
)

func TestHintDisplayShowHide(t *testing.T) {
	d := &HintDisplay{}
	if d.Visible() {
		t.Fatal("fresh display should not be visible")
	}
	if _, found := d.LabelFor("log"); found {
		t.Error("LabelFor should find nothing before Show")
	}

	d.Show(hint.Mapping{
		"b": {ID: "help", Ordinal: 2},
		"c": {ID: "log", Ordinal: 3},
	})
	if !d.Visible() {
		t.Fatal("display should be visible after Show")
	}
	if label, found := d.LabelFor("log"); !found || label != "c" {
		t.Errorf("LabelFor(log) = %q, %v, want \"c\", true", label, found)
	}

	d.Hide()
	if d.Visible() {
		t.Error("display should not be visible after Hide")
	}
	if got := d.Labels(); got != nil {
		t.Errorf("Labels after Hide = %v, want nil", got)
	}
}

func TestHintDisplayShowReplaces(t *testing.T) {
	d := &HintDisplay{}
	d.Show(hint.Mapping{
		"b": {ID: "help", Ordinal: 2},
		"c": {ID: "log", Ordinal: 3},
	})
	d.Show(hint.Mapping{
		"c": {ID: "log", Ordinal: 3},
	})
	if _, found := d.LabelFor("help"); found {
		t.Error("label from the replaced mapping should be gone")
	}
	if _, found := d.LabelFor("log"); !found {
		t.Error("label from the new mapping should be present")
	}
}

func TestHintDisplayLabels(t *testing.T) {
	d := &HintDisplay{}
	d.Show(hint.Mapping{
		"d": {ID: "preview", Ordinal: 4},
		"b": {ID: "help", Ordinal: 2},
		"c": {ID: "log", Ordinal: 3},
	})
	want := []string{"b:help", "c:log", "d:preview"}
	if got := d.Labels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Labels() = %v, want %v", got, want)
	}
}
