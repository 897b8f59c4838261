package suggestion

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze scans the mailbox and proposes PTO windows.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
	// ListCandidates returns the messages the mailbox query matched.
	ListCandidates(ctx context.Context, input ListCandidatesInput) (ListCandidatesOutput, error)
}
