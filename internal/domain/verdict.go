package domain

// Verdict is a judge outcome. Constants hold the canonical short codes
// the platforms agree on; unknown inputs map to VerdictUnknown.
type Verdict string

const (
	VerdictCompileError             Verdict = "CE"
	VerdictWrongAnswer              Verdict = "WA"
	VerdictTimeLimitExceeded        Verdict = "TLE"
	VerdictMemoryLimitExceeded      Verdict = "MLE"
	VerdictAccepted                 Verdict = "AC"
	VerdictWaiting                  Verdict = "WJ"
	VerdictOutputLimit              Verdict = "OLE"
	VerdictRuntimeError             Verdict = "RE"
	VerdictPresentationError        Verdict = "PE"
	VerdictFailed                   Verdict = "FAILED"
	VerdictOk                       Verdict = "OK"
	VerdictPartial                  Verdict = "PARTIAL"
	VerdictIdlenessLimitExceeded    Verdict = "ILE"
	VerdictSecurityViolated         Verdict = "SV"
	VerdictCrashed                  Verdict = "CRASHED"
	VerdictInputPresentationCrashed Verdict = "IPC"
	VerdictChallenged               Verdict = "CHALLENGED"
	VerdictSkipped                  Verdict = "SKIPPED"
	VerdictTesting                  Verdict = "TESTING"
	VerdictRejected                 Verdict = "REJECTED"
	VerdictUnknown                  Verdict = "UNKNOWN"
)

var verdictByCode = map[string]Verdict{
	"CE":         VerdictCompileError,
	"WA":         VerdictWrongAnswer,
	"TLE":        VerdictTimeLimitExceeded,
	"MLE":        VerdictMemoryLimitExceeded,
	"AC":         VerdictAccepted,
	"WJ":         VerdictWaiting,
	"OLE":        VerdictOutputLimit,
	"RE":         VerdictRuntimeError,
	"PE":         VerdictPresentationError,
	"FAILED":     VerdictFailed,
	"OK":         VerdictOk,
	"PARTIAL":    VerdictPartial,
	"ILE":        VerdictIdlenessLimitExceeded,
	"SV":         VerdictSecurityViolated,
	"CRASHED":    VerdictCrashed,
	"IPC":        VerdictInputPresentationCrashed,
	"CHALLENGED": VerdictChallenged,
	"SKIPPED":    VerdictSkipped,
	"TESTING":    VerdictTesting,
	"REJECTED":   VerdictRejected,
}

// ParseVerdict maps a platform verdict code to a Verdict.
func ParseVerdict(code string) Verdict {
	if v, ok := verdictByCode[code]; ok {
		return v
	}
	return VerdictUnknown
}

func (v Verdict) String() string {
	return string(v)
}
