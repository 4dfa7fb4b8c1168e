package entities

import "testing"

func TestEnv_GetAndLookup(t *testing.T) {
	env := NewEnv(map[string]string{
		OptionPathname: "/tmp/bundle.zip",
		OptionName:     "MyRecipe",
	})

	if got := env.Get(OptionPathname); got != "/tmp/bundle.zip" {
		t.Errorf("Get(pathname) = %q", got)
	}
	if got := env.Get(OptionDestinationPath); got != "" {
		t.Errorf("Get of unset option = %q, want empty", got)
	}
	if _, ok := env.Lookup(OptionDestinationPath); ok {
		t.Error("Lookup of unset option should report absence")
	}
	if v, ok := env.Lookup(OptionName); !ok || v != "MyRecipe" {
		t.Errorf("Lookup(NAME) = %q, %v", v, ok)
	}
}

func TestEnv_IsolatedFromCallerMap(t *testing.T) {
	source := map[string]string{OptionPathname: "/tmp/a"}
	env := NewEnv(source)
	source[OptionPathname] = "/tmp/b"

	if got := env.Get(OptionPathname); got != "/tmp/a" {
		t.Errorf("Get(pathname) = %q, env should copy the mapping", got)
	}
}

func TestEnv_GetBool(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"", false},
		{"0", false},
		{"false", false},
		{"False", false},
		{"no", false},
		{"true", true},
		{"1", true},
		{"yes", true},
	}

	for _, tt := range tests {
		t.Run("value_"+tt.value, func(t *testing.T) {
			env := NewEnv(map[string]string{OptionPurgeDestination: tt.value})
			if got := env.GetBool(OptionPurgeDestination); got != tt.want {
				t.Errorf("GetBool(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestEnv_GetList(t *testing.T) {
	env := NewEnv(map[string]string{
		OptionGPGKeyPaths: "/keys/a.asc, /keys/b.asc,,",
	})

	got := env.GetList(OptionGPGKeyPaths)
	want := []string{"/keys/a.asc", "/keys/b.asc"}
	if len(got) != len(want) {
		t.Fatalf("GetList() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetList()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	if list := env.GetList(OptionSignaturePath); list != nil {
		t.Errorf("GetList of unset option = %v, want nil", list)
	}
}
