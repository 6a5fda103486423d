package activity

// Sign is the direction prefix rendered ahead of an amount.
type Sign string

const (
	SignIn   Sign = "+"
	SignOut  Sign = "-"
	SignNone Sign = ""
)

// Details holds the display classification of a transaction type: the
// direction of value flow relative to the user and a human category label.
type Details struct {
	Sign     Sign   `json:"sign"`
	Category string `json:"category"`
}

// typeDetails maps every transaction type to its classification.
var typeDetails = map[Type]Details{
	TypeDeposit:             {Sign: SignIn, Category: "Savings"},
	TypeWithdraw:            {Sign: SignOut, Category: "Savings"},
	TypeFastWithdraw:        {Sign: SignOut, Category: "Savings"},
	TypeUnstake:             {Sign: SignOut, Category: "Savings"},
	TypeCancelWithdraw:      {Sign: SignIn, Category: "Savings"},
	TypeSend:                {Sign: SignOut, Category: "Transfer"},
	TypeReceive:             {Sign: SignIn, Category: "Transfer"},
	TypeBankTransfer:        {Sign: SignIn, Category: "Transfer"},
	TypeBridge:              {Sign: SignOut, Category: "Bridge"},
	TypeBridgeDeposit:       {Sign: SignIn, Category: "Bridge"},
	TypeBridgeTransfer:      {Sign: SignNone, Category: "Bridge"},
	TypeCardTransaction:     {Sign: SignOut, Category: "Card"},
	TypeCardWelcomeBonus:    {Sign: SignIn, Category: "Rewards"},
	TypeDepositBonus:        {Sign: SignIn, Category: "Rewards"},
	TypeMerklClaim:          {Sign: SignIn, Category: "Rewards"},
	TypeSwap:                {Sign: SignNone, Category: "Exchange"},
	TypeWrap:                {Sign: SignNone, Category: "Exchange"},
	TypeUnwrap:              {Sign: SignNone, Category: "Exchange"},
	TypeMercuryoTransaction: {Sign: SignIn, Category: "On-ramp"},
}

// Classify returns the display classification for a transaction type.
// Unknown types get a neutral sign and the "Unknown" category so new ledger
// kinds never break rendering.
func Classify(t Type) Details {
	if d, ok := typeDetails[t]; ok {
		return d
	}
	return Details{Sign: SignNone, Category: "Unknown"}
}

// DisplaySign returns the amount prefix for an activity. Terminal non-success
// states suppress the direction sign: the row shows the status instead of a
// signed amount.
func DisplaySign(a *Activity) Sign {
	switch a.Status {
	case StatusFailed, StatusExpired, StatusRefunded, StatusCancelled:
		return SignNone
	}
	return Classify(a.Type).Sign
}
