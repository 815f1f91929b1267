package toast

// DismissCause records why a toast left.
type DismissCause string

const (
	CauseAuto   DismissCause = "auto"
	CauseManual DismissCause = "manual"
)

// DecodeOutcome classifies a trigger header value.
type DecodeOutcome string

const (
	// OutcomeToast: a showToast request was decoded.
	OutcomeToast DecodeOutcome = "toast"
	// OutcomeAbsent: no header value.
	OutcomeAbsent DecodeOutcome = "absent"
	// OutcomeMalformed: not a JSON object, or showToast had the wrong shape.
	OutcomeMalformed DecodeOutcome = "malformed"
	// OutcomeIgnored: valid triggers, none for toasts.
	OutcomeIgnored DecodeOutcome = "ignored"
)

// Observer is told about toast activity. ToastShown and ToastRemoved run on
// the loop; TriggerDecoded runs wherever the header was decoded. None may
// block.
type Observer interface {
	ToastShown(category Type)
	ToastRemoved(cause DismissCause)
	TriggerDecoded(outcome DecodeOutcome)
}

type nopObserver struct{}

func (nopObserver) ToastShown(Type)              {}
func (nopObserver) ToastRemoved(DismissCause)    {}
func (nopObserver) TriggerDecoded(DecodeOutcome) {}
