package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if v := FirstNonZero(0, 0, 3, 4); v != 3 {
		t.Fatalf("got %v", v)
	}
	if v := FirstNonZero[string](); v != "" {
		t.Fatalf("got %v", v)
	}
}

func TestPtr(t *testing.T) {
	p := Ptr(42)
	if *p != 42 {
		t.Fatalf("got %v", *p)
	}
	if Ptr(42) == p {
		t.Fatal()
	}
}

func TestParseBool(t *testing.T) {
	for str, expected := range map[string]bool{
		"true":  true,
		"Yes":   true,
		" on ":  true,
		"1":     true,
		"false": false,
		"N":     false,
		"off":   false,
		"0":     false,
	} {
		t.Run(str, func(t *testing.T) {
			v, err := ParseBool(str)
			if err != nil {
				t.Fatal(err)
			}
			if v != expected {
				t.Fatalf("got %v", v)
			}
		})
	}
	if _, err := ParseBool("maybe"); err == nil {
		t.Fatal("should error")
	}
}
