package plans

import "testing"

func TestByKeyKnownPlans(t *testing.T) {
	p, ok := ByKey("plan3")
	if !ok {
		t.Fatal("expected plan3 to exist")
	}
	if p.Name != "1 Year" || p.Price != 1999 || p.Days != 365 {
		t.Fatalf("unexpected plan3: %+v", p)
	}
	if p.PriceLabel() != "₹1999" {
		t.Fatalf("unexpected price label %q", p.PriceLabel())
	}
}

func TestByKeyUnknownPlan(t *testing.T) {
	if _, ok := ByKey("plan99"); ok {
		t.Fatal("expected lookup of unknown key to fail")
	}
}

func TestAllKeepsDisplayOrder(t *testing.T) {
	all := All()
	if len(all) != 4 {
		t.Fatalf("expected 4 plans, got %d", len(all))
	}
	if all[0].Key != "plan1" || all[3].Key != "plan4" {
		t.Fatalf("catalog out of order: %v", all)
	}

	// mutating the returned slice must not touch the catalog
	all[0].Name = "mutated"
	if p, _ := ByKey("plan1"); p.Name == "mutated" {
		t.Fatal("All() leaked the internal catalog slice")
	}
}

func TestNameOrDash(t *testing.T) {
	gone := "deleted_plan"
	known := "plan2"
	cases := []struct {
		key  *string
		want string
	}{
		{nil, "—"},
		{&gone, "—"},
		{&known, "6 Months"},
	}
	for _, c := range cases {
		if got := NameOrDash(c.key); got != c.want {
			t.Errorf("NameOrDash(%v) = %q, want %q", c.key, got, c.want)
		}
	}
}
