package telegram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dmdipanshu/premium-sub-bot/internal/ports"
)

// ActionKind enumerates every inline-button action the bot understands.
// Callback data is decoded once at the boundary into an Action and matched
// exhaustively; malformed payloads fail here instead of deep in a handler.
type ActionKind int

const (
	ActionUnknown ActionKind = iota
	ActionMenuBuy
	ActionMenuMy
	ActionMenuSupport
	ActionMenuOffers
	ActionSelectPlan
	ActionAskProof
	ActionAdminMenu
	ActionAdminPending
	ActionAdminUsers
	ActionAdminStats
	ActionAdminBroadcast
	ActionDecidePayment
	ActionReplyHint
)

type Action struct {
	Kind      ActionKind
	PlanKey   string
	PaymentID string
	Decision  ports.Decision
	UserID    int64
}

// ParseAction decodes callback data of the form "menu:buy", "plan:plan2",
// "pay:ask:plan2", "admin:approve:<payment_id>", "admin:reply:<user_id>".
func ParseAction(data string) (Action, error) {
	parts := strings.Split(data, ":")

	switch parts[0] {
	case "menu":
		if len(parts) != 2 {
			return Action{}, fmt.Errorf("malformed menu action %q", data)
		}
		switch parts[1] {
		case "buy":
			return Action{Kind: ActionMenuBuy}, nil
		case "my":
			return Action{Kind: ActionMenuMy}, nil
		case "support":
			return Action{Kind: ActionMenuSupport}, nil
		case "offers":
			return Action{Kind: ActionMenuOffers}, nil
		}

	case "plan":
		if len(parts) != 2 || parts[1] == "" {
			return Action{}, fmt.Errorf("malformed plan action %q", data)
		}
		return Action{Kind: ActionSelectPlan, PlanKey: parts[1]}, nil

	case "pay":
		if len(parts) != 3 || parts[1] != "ask" || parts[2] == "" {
			return Action{}, fmt.Errorf("malformed pay action %q", data)
		}
		return Action{Kind: ActionAskProof, PlanKey: parts[2]}, nil

	case "admin":
		if len(parts) < 2 {
			return Action{}, fmt.Errorf("malformed admin action %q", data)
		}
		switch parts[1] {
		case "menu":
			return Action{Kind: ActionAdminMenu}, nil
		case "pending":
			return Action{Kind: ActionAdminPending}, nil
		case "users":
			return Action{Kind: ActionAdminUsers}, nil
		case "stats":
			return Action{Kind: ActionAdminStats}, nil
		case "broadcast":
			return Action{Kind: ActionAdminBroadcast}, nil
		case "approve", "deny":
			if len(parts) != 3 || parts[2] == "" {
				return Action{}, fmt.Errorf("malformed decision action %q", data)
			}
			d := ports.DecisionApprove
			if parts[1] == "deny" {
				d = ports.DecisionDeny
			}
			return Action{Kind: ActionDecidePayment, PaymentID: parts[2], Decision: d}, nil
		case "reply":
			if len(parts) != 3 {
				return Action{}, fmt.Errorf("malformed reply action %q", data)
			}
			id, err := strconv.ParseInt(parts[2], 10, 64)
			if err != nil {
				return Action{}, fmt.Errorf("malformed reply target %q", data)
			}
			return Action{Kind: ActionReplyHint, UserID: id}, nil
		}
	}

	return Action{}, fmt.Errorf("unknown callback data %q", data)
}

// callback data builders keep the wire format next to its parser.

func dataSelectPlan(planKey string) string { return "plan:" + planKey }
func dataAskProof(planKey string) string   { return "pay:ask:" + planKey }

func dataDecide(d ports.Decision, paymentID string) string {
	return fmt.Sprintf("admin:%s:%s", d, paymentID)
}

func dataReplyHint(userID int64) string {
	return fmt.Sprintf("admin:reply:%d", userID)
}
