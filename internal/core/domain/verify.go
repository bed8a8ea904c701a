package domain

// VerifyStatus is the outcome of comparing one icon on disk with a fresh render.
type VerifyStatus string

const (
	// VerifyStatusOK indicates the file matches a fresh render.
	VerifyStatusOK VerifyStatus = "ok"
	// VerifyStatusMissing indicates the file does not exist.
	VerifyStatusMissing VerifyStatus = "missing"
	// VerifyStatusDrifted indicates the file content differs from a fresh render.
	VerifyStatusDrifted VerifyStatus = "drifted"
)

// VerifyResult is the verification outcome for one manifest entry.
type VerifyResult struct {
	Filename string
	Path     string
	Status   VerifyStatus
	// Want is the digest of the freshly rendered icon.
	Want string
	// Got is the digest of the file on disk, empty when missing.
	Got string
}

// VerifyReport collects the results of a verification run in manifest order.
type VerifyReport struct {
	Results []VerifyResult
	// Stray lists icon files in the output directory that the manifest does
	// not mention. They do not fail verification.
	Stray []string
}

// Failed reports whether any icon is missing or drifted.
func (r *VerifyReport) Failed() bool {
	return r.Count(VerifyStatusMissing)+r.Count(VerifyStatusDrifted) > 0
}

// Count returns the number of results with the given status.
func (r *VerifyReport) Count(status VerifyStatus) int {
	n := 0
	for _, res := range r.Results {
		if res.Status == status {
			n++
		}
	}
	return n
}
