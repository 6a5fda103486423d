package activity

import "testing"

func TestClassify_KnownTypes(t *testing.T) {
	tests := []struct {
		typ      Type
		sign     Sign
		category string
	}{
		{TypeDeposit, SignIn, "Savings"},
		{TypeWithdraw, SignOut, "Savings"},
		{TypeCardTransaction, SignOut, "Card"},
		{TypeCardWelcomeBonus, SignIn, "Rewards"},
		{TypeSwap, SignNone, "Exchange"},
		{TypeBankTransfer, SignIn, "Transfer"},
	}

	for _, tt := range tests {
		t.Run(string(tt.typ), func(t *testing.T) {
			d := Classify(tt.typ)
			if d.Sign != tt.sign {
				t.Errorf("Classify(%s).Sign = %q, want %q", tt.typ, d.Sign, tt.sign)
			}
			if d.Category != tt.category {
				t.Errorf("Classify(%s).Category = %q, want %q", tt.typ, d.Category, tt.category)
			}
		})
	}
}

func TestClassify_UnknownType(t *testing.T) {
	d := Classify("teleport")
	if d.Sign != SignNone || d.Category != "Unknown" {
		t.Errorf("Classify(unknown) = %+v, want neutral/Unknown", d)
	}
}

func TestClassify_EveryTypeHasDetails(t *testing.T) {
	for typ := range validTypes {
		if _, ok := typeDetails[typ]; !ok {
			t.Errorf("type %q has no display classification", typ)
		}
	}
}

func TestDisplaySign_StatusOverrides(t *testing.T) {
	tests := []struct {
		status Status
		want   Sign
	}{
		{StatusSuccess, SignIn},
		{StatusPending, SignIn},
		{StatusProcessing, SignIn},
		{StatusFailed, SignNone},
		{StatusExpired, SignNone},
		{StatusRefunded, SignNone},
		{StatusCancelled, SignNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			a := &Activity{Type: TypeDeposit, Status: tt.status}
			if got := DisplaySign(a); got != tt.want {
				t.Errorf("DisplaySign(deposit, %s) = %q, want %q", tt.status, got, tt.want)
			}
		})
	}
}
