package validate_test

import (
	"testing"

	"github.com/MedProgramer24/inventory-project/internal/validate"
)

func TestID(t *testing.T) {
	for _, ok := range []string{"p-1", "loc_storage", "A9"} {
		if _, valid := validate.ID(ok); !valid {
			t.Errorf("ID(%q) should pass", ok)
		}
	}
	for _, bad := range []string{"", "has space", "semi;colon", "../../etc"} {
		if _, valid := validate.ID(bad); valid {
			t.Errorf("ID(%q) should fail", bad)
		}
	}
}

func TestStatusName(t *testing.T) {
	if _, ok := validate.StatusName("  in use "); !ok {
		t.Error("trimmed status should pass")
	}
	if s, _ := validate.StatusName(" repair "); s != "repair" {
		t.Errorf("want trimmed name, got %q", s)
	}
	if _, ok := validate.StatusName(""); ok {
		t.Error("empty status should fail")
	}
	if _, ok := validate.StatusName("xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx"); ok {
		t.Error("overlong status should fail")
	}
}

func TestPageAndPerPage(t *testing.T) {
	if validate.Page("", 1) != 1 || validate.Page("0", 1) != 1 || validate.Page("3", 1) != 3 {
		t.Error("Page fallback/parse broken")
	}
	if validate.PerPage("500", 10) != 100 {
		t.Error("PerPage should clamp")
	}
	if validate.PerPage("junk", 10) != 10 {
		t.Error("PerPage fallback broken")
	}
}

func TestPassword(t *testing.T) {
	if !validate.Password("Passw0rd!") {
		t.Error("valid password rejected")
	}
	for _, bad := range []string{"short1!", "alllowercase1!", "NOLOWER1!", "NoDigits!!", "NoSymbol11"} {
		if validate.Password(bad) {
			t.Errorf("Password(%q) should fail", bad)
		}
	}
}
