package http

import (
	"strings"
	"testing"
)

type sampleReq struct {
	CustomerID string  `validate:"required,hex32"`
	Amount     float64 `validate:"required,gt=0,dec2"`
	Date       string  `validate:"required,datetime=2006-01-02"`
}

func TestValidator_AcceptsWellFormed(t *testing.T) {
	cv := NewValidator()
	req := sampleReq{
		CustomerID: strings.Repeat("a", 32),
		Amount:     1000.25,
		Date:       "2026-01-15",
	}
	if err := cv.Validate(&req); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestValidator_Hex32(t *testing.T) {
	cv := NewValidator()
	bad := []string{
		"",
		"short",
		strings.Repeat("A", 32), // uppercase rejected
		strings.Repeat("g", 32), // non-hex rejected
		strings.Repeat("a", 33),
	}
	for _, v := range bad {
		req := sampleReq{CustomerID: v, Amount: 10, Date: "2026-01-15"}
		err := cv.Validate(&req)
		if err == nil {
			t.Errorf("Validate accepted CustomerID %q", v)
			continue
		}
		fes := ToFieldErrors(err)
		if !containsFieldMsg(fes, "CustomerID", "hex") && !containsFieldMsg(fes, "CustomerID", "required") {
			t.Errorf("unexpected details for %q: %+v", v, fes)
		}
	}
}

func TestValidator_Dec2(t *testing.T) {
	cv := NewValidator()
	req := sampleReq{CustomerID: strings.Repeat("a", 32), Amount: 10.999, Date: "2026-01-15"}
	err := cv.Validate(&req)
	if err == nil {
		t.Fatal("Validate accepted 3 decimal places")
	}
	if !containsFieldMsg(ToFieldErrors(err), "Amount", "2 decimal places") {
		t.Fatalf("unexpected details: %+v", ToFieldErrors(err))
	}
}

func TestValidator_DateFormat(t *testing.T) {
	cv := NewValidator()
	for _, v := range []string{"15-01-2026", "2026/01/15", "tomorrow"} {
		req := sampleReq{CustomerID: strings.Repeat("a", 32), Amount: 10, Date: v}
		if err := cv.Validate(&req); err == nil {
			t.Errorf("Validate accepted date %q", v)
		}
	}
}
