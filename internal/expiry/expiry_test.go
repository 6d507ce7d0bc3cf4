package expiry

import (
	"testing"
	"time"
)

func TestYYMM_Rollover(t *testing.T) {
	issue := time.Date(2029, time.December, 15, 0, 0, 0, 0, time.UTC)
	if got := YYMM(issue, 1); got != "3012" {
		t.Fatalf("YYMM got %s want %s", got, "3012")
	}
	if got := CardFace(issue, 1); got != "12/30" {
		t.Fatalf("CardFace got %s want %s", got, "12/30")
	}
}

func TestValidateYYMM(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"3002", true}, {"9912", true}, {"0001", true},
		{"123", false}, {"12a4", false}, {"3013", false}, {"0000", false},
	}
	for _, c := range cases {
		err := ValidateYYMM(c.in)
		if (err == nil) != c.ok {
			t.Fatalf("ValidateYYMM(%s) ok=%v got err=%v", c.in, c.ok, err)
		}
	}
}

func TestParseYYMM(t *testing.T) {
	year, month, err := ParseYYMM("1508")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if year != 2015 || month != time.August {
		t.Fatalf("got %d-%d want 2015-8", year, month)
	}
	if _, _, err := ParseYYMM("1513"); err == nil {
		t.Fatal("expected error for month 13")
	}
}

func TestEndOfMonth(t *testing.T) {
	// 2030-02 (non-leap): expect 28th 23:59:59.999999999
	ts, err := EndOfMonth("3002")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want := time.Date(2030, time.February, 28, 23, 59, 59, 999999999, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %v want %v", ts, want)
	}

	ts, err = EndOfMonth("3004")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	want = time.Date(2030, time.April, 30, 23, 59, 59, 999999999, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %v want %v", ts, want)
	}
}

func TestIsExpired(t *testing.T) {
	yymm := "3002" // 2030-02
	end, _ := EndOfMonth(yymm)

	expired, err := IsExpired(yymm, end.Add(-time.Nanosecond))
	if err != nil || expired {
		t.Fatalf("expected not expired before end, got expired=%v err=%v", expired, err)
	}
	// At end -> not expired (expiry is end instant inclusive)
	expired, err = IsExpired(yymm, end)
	if err != nil || expired {
		t.Fatalf("expected not expired at end, got expired=%v err=%v", expired, err)
	}
	expired, err = IsExpired(yymm, end.Add(time.Nanosecond))
	if err != nil || !expired {
		t.Fatalf("expected expired after end, got expired=%v err=%v", expired, err)
	}
}

func TestYearsForProduct(t *testing.T) {
	if got := YearsForProduct("credit", 0); got != 3 {
		t.Fatalf("credit got %d want 3", got)
	}
	if got := YearsForProduct("debit", 0); got != 5 {
		t.Fatalf("debit got %d want 5", got)
	}
	if got := YearsForProduct("credit", 7); got != 7 {
		t.Fatalf("override got %d want 7", got)
	}
	if got := YearsForProduct("unknown", 0); got != 5 {
		t.Fatalf("fallback got %d want 5", got)
	}
}
