package telegram

import (
	"testing"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
)

func TestParseAction(t *testing.T) {
	cases := []struct {
		data string
		want Action
	}{
		{"menu:buy", Action{Kind: ActionMenuBuy}},
		{"menu:my", Action{Kind: ActionMenuMy}},
		{"menu:support", Action{Kind: ActionMenuSupport}},
		{"menu:offers", Action{Kind: ActionMenuOffers}},
		{"plan:plan2", Action{Kind: ActionSelectPlan, PlanKey: "plan2"}},
		{"pay:ask:plan3", Action{Kind: ActionAskProof, PlanKey: "plan3"}},
		{"admin:menu", Action{Kind: ActionAdminMenu}},
		{"admin:pending", Action{Kind: ActionAdminPending}},
		{"admin:users", Action{Kind: ActionAdminUsers}},
		{"admin:stats", Action{Kind: ActionAdminStats}},
		{"admin:broadcast", Action{Kind: ActionAdminBroadcast}},
		{
			"admin:approve:0d1f7f1e-6f2a-4b4b-9a9a-3f1a2b3c4d5e",
			Action{Kind: ActionDecidePayment, PaymentID: "0d1f7f1e-6f2a-4b4b-9a9a-3f1a2b3c4d5e", Decision: ports.DecisionApprove},
		},
		{
			"admin:deny:abc",
			Action{Kind: ActionDecidePayment, PaymentID: "abc", Decision: ports.DecisionDeny},
		},
		{"admin:reply:42", Action{Kind: ActionReplyHint, UserID: 42}},
	}

	for _, c := range cases {
		got, err := ParseAction(c.data)
		if err != nil {
			t.Errorf("ParseAction(%q) returned error: %v", c.data, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseAction(%q) = %+v, want %+v", c.data, got, c.want)
		}
	}
}

func TestParseActionRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"garbage",
		"menu:",
		"menu:unknown",
		"plan:",
		"pay:ask:",
		"pay:send:plan1",
		"admin:",
		"admin:approve",
		"admin:approve:",
		"admin:reply:not-a-number",
		"admin:reply:1:extra",
	}
	for _, data := range bad {
		if _, err := ParseAction(data); err == nil {
			t.Errorf("ParseAction(%q) should fail", data)
		}
	}
}

func TestDataBuildersRoundTrip(t *testing.T) {
	a, err := ParseAction(dataSelectPlan("plan4"))
	if err != nil || a.Kind != ActionSelectPlan || a.PlanKey != "plan4" {
		t.Fatalf("select-plan round trip failed: %+v err=%v", a, err)
	}

	a, err = ParseAction(dataAskProof("plan1"))
	if err != nil || a.Kind != ActionAskProof || a.PlanKey != "plan1" {
		t.Fatalf("ask-proof round trip failed: %+v err=%v", a, err)
	}

	a, err = ParseAction(dataDecide(ports.DecisionDeny, "pid-1"))
	if err != nil || a.Kind != ActionDecidePayment || a.Decision != ports.DecisionDeny || a.PaymentID != "pid-1" {
		t.Fatalf("decide round trip failed: %+v err=%v", a, err)
	}

	a, err = ParseAction(dataReplyHint(777))
	if err != nil || a.Kind != ActionReplyHint || a.UserID != 777 {
		t.Fatalf("reply-hint round trip failed: %+v err=%v", a, err)
	}
}
