package config

import "testing"

type vmConfig struct {
	MemorySize int    `config:"vm.memory_size,default=65536"`
	InitialSP  int    `config:"vm.initial_sp"`
	Trace      bool   `config:"vm.trace"`
	Label      string `config:"vm.label,default=sim8086"`
}

func TestParse_SectionsAndComments(t *testing.T) {
	data := `# leading comment
[vm]
memory_size = 1024
initial_sp = 65534
trace = true
`
	cfg, err := Parse([]byte(data))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	v, ok := cfg.Get("vm", "memory_size")
	if !ok || v != "1024" {
		t.Fatalf("Get(vm.memory_size) = %q, %v", v, ok)
	}
}

func TestUnmarshal_DefaultsAndOverrides(t *testing.T) {
	data := `[vm]
initial_sp = 65534
trace = true
`
	var cfg vmConfig
	if err := loadFromString(data, &cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.MemorySize != 65536 {
		t.Fatalf("MemorySize = %d, want default 65536", cfg.MemorySize)
	}
	if cfg.InitialSP != 65534 {
		t.Fatalf("InitialSP = %d, want 65534", cfg.InitialSP)
	}
	if !cfg.Trace {
		t.Fatalf("Trace = false, want true")
	}
	if cfg.Label != "sim8086" {
		t.Fatalf("Label = %q, want default sim8086", cfg.Label)
	}
}

func TestUnmarshal_RejectsNonPointer(t *testing.T) {
	cfg, err := Parse([]byte("[vm]\ntrace = true\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	var v vmConfig
	if err := cfg.Unmarshal(v); err == nil {
		t.Fatalf("Unmarshal(non-pointer) = nil error, want ErrInvalidTarget")
	}
}

func TestParse_MalformedLine(t *testing.T) {
	if _, err := Parse([]byte("[vm]\nnot-a-key-value-pair\n")); err == nil {
		t.Fatalf("Parse(malformed) = nil error, want ErrMalformedLine")
	}
}

// loadFromString parses data and unmarshals it, avoiding a temp file for a
// pure in-memory test.
func loadFromString(data string, v any) error {
	cfg, err := Parse([]byte(data))
	if err != nil {
		return err
	}
	return cfg.Unmarshal(v)
}
