package icons

import "testing"

func TestResolveKnown(t *testing.T) {
	def, err := Resolve(Calendar)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if def.Name != Calendar {
		t.Errorf("Expected name %q, got %q", Calendar, def.Name)
	}

	if def.CSS == "" || def.Unicode == "" {
		t.Error("Expected renderable CSS class and codepoint")
	}
}

func TestResolveUnknown(t *testing.T) {
	if _, err := Resolve("faDoesNotExist"); err == nil {
		t.Error("Expected error for unknown icon name")
	}

	if Known("faDoesNotExist") {
		t.Error("Unknown name reported as known")
	}
}

func TestNamesCoversRegistry(t *testing.T) {
	names := Names()
	if len(names) != 17 {
		t.Errorf("Expected 17 supported icons, got %d", len(names))
	}

	for _, name := range names {
		if !Known(name) {
			t.Errorf("Name %q not resolvable", name)
		}
	}
}
