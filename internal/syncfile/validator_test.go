package syncfile

import "testing"

func TestValidateFile_Valid(t *testing.T) {
	for _, file := range []string{"valid.yaml", "minimal.yaml"} {
		t.Run(file, func(t *testing.T) {
			result, err := ValidateFile(testPath(file))
			if err != nil {
				t.Fatalf("ValidateFile error: %v", err)
			}
			if !result.Valid {
				t.Errorf("Valid = false, issues: %+v", result.Issues)
			}
		})
	}
}

func TestValidateFile_MissingRequired(t *testing.T) {
	result, err := ValidateFile(testPath("missing-project.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true for manifest missing project_name")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
}

func TestValidateFile_BadTypes(t *testing.T) {
	result, err := ValidateFile(testPath("bad-types.yaml"))
	if err != nil {
		t.Fatalf("ValidateFile error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true for manifest with wrong field types")
	}
}

func TestValidate_UnknownKeyRejected(t *testing.T) {
	data := []byte("project_dir: App\nproject_name: App\nfiles: []\nbogus: true\n")
	result, err := Validate(data)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("Valid = true for manifest with unknown key")
	}
}

func TestStarterValidates(t *testing.T) {
	result, err := Validate([]byte(Starter("Redi", "Redi")))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("starter manifest invalid, issues: %+v", result.Issues)
	}
}
