package pipeline

// Monitor provides hooks to observe a pipeline run.
// Implement this interface to stream progress while a run is in
// flight. VerifyResult may be called from worker goroutines;
// implementations must be safe for concurrent use.
type Monitor interface {
	CatalogLoaded(rows int)
	FrequencyLoaded(words int)
	CandidatesSelected(kept, dropped int)
	VerifyStart(total int)
	VerifyResult(word, video string, ok bool)
	// PhraseAnnotated fires once per kept phrase; count is the word's
	// running phrase total.
	PhraseAnnotated(word string, count int)
	ArtifactWritten(path string, words, phrases int)
	IndexRebuilt(path string, files int)
}

// NopMonitor is the silent Monitor used when the caller installs none.
type NopMonitor struct{}

var _ Monitor = (*NopMonitor)(nil)

func (n *NopMonitor) CatalogLoaded(_ int)                {}
func (n *NopMonitor) FrequencyLoaded(_ int)              {}
func (n *NopMonitor) CandidatesSelected(_, _ int)        {}
func (n *NopMonitor) VerifyStart(_ int)                  {}
func (n *NopMonitor) VerifyResult(_, _ string, _ bool)   {}
func (n *NopMonitor) PhraseAnnotated(_ string, _ int)    {}
func (n *NopMonitor) ArtifactWritten(_ string, _, _ int) {}
func (n *NopMonitor) IndexRebuilt(_ string, _ int)       {}
