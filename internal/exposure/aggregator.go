// Package exposure implements the multi-source exposure check: concurrent
// fan-out to source clients, cross-source reconciliation of their findings
// and derivation of the combined risk verdict.
package exposure

import (
	"context"
	"errors"
	"sync"
	"time"

	"guardian/pkg/domain"
	"guardian/pkg/logger"
	"guardian/pkg/metrics"
	"guardian/pkg/source"

	"go.uber.org/zap"
)

const (
	defaultSourceTimeout = 10 * time.Second

	// totalFailureNote explains a degraded report to the reader.
	totalFailureNote = "all exposure sources were unreachable; findings are incomplete and the risk level could not be determined"
	cancelledNote    = "the check was cancelled before all sources answered"
)

// Options carries the aggregation settings.
type Options struct {
	// SourceTimeout bounds each individual source lookup.
	SourceTimeout time.Duration
}

// Aggregator fans an exposure query out to all applicable source clients and
// merges whatever subset of them answered into one combined report. It never
// returns an error: degraded input yields a degraded report.
type Aggregator struct {
	clients    []source.Client
	scorer     *Scorer
	timeout    time.Duration
	priorities map[string]int
}

// lookupResult is the typed outcome of one client call. Failures stay
// visible here instead of being swallowed mid-flight, so the merge step can
// count them deliberately.
type lookupResult struct {
	client   string
	attr     source.Attribute
	findings source.Findings
	err      error
}

// New constructs an Aggregator over the given clients.
func New(clients []source.Client, scorer *Scorer, options Options) *Aggregator {
	if options.SourceTimeout <= 0 {
		options.SourceTimeout = defaultSourceTimeout
	}

	priorities := make(map[string]int, len(clients))
	for _, c := range clients {
		priorities[c.Name()] = c.Priority()
	}

	return &Aggregator{
		clients:    clients,
		scorer:     scorer,
		timeout:    options.SourceTimeout,
		priorities: priorities,
	}
}

// Aggregate runs one exposure check. The query must already be validated.
func (a *Aggregator) Aggregate(ctx context.Context, query domain.ExposureQuery) domain.CombinedExposureReport {
	report := domain.CombinedExposureReport{Query: query}

	attrs := queryAttributes(query)
	results := a.fanOut(ctx, attrs)

	if ctx.Err() != nil {
		// partial results are discarded on caller cancellation
		report.RiskLevel = domain.RiskUnknown
		report.Note = cancelledNote

		return report
	}

	var (
		attempted, failed int
		riskByAttr        = make(map[source.AttributeKind]domain.RiskLevel, len(attrs))
		recommendations   [][]string
	)
	for _, attr := range attrs {
		attrResults := resultsFor(results, attr.Kind)
		attempted += len(attrResults)
		for _, r := range attrResults {
			if r.err != nil {
				failed++
			}
		}

		switch attr.Kind {
		case source.AttributeEmail:
			email, risk, recs := a.buildEmailReport(attr.Value, attrResults)
			report.EmailReport = email
			riskByAttr[attr.Kind] = risk
			recommendations = append(recommendations, recs)
		case source.AttributeUsername, source.AttributeFullName:
			username, risk, recs := a.buildUsernameReport(attr.Value, query.IdentifierKind, attrResults)
			report.UsernameReport = username
			riskByAttr[attr.Kind] = risk
			recommendations = append(recommendations, recs)
		}
	}

	report.RiskLevel = combineAttrRisks(riskByAttr)
	report.Recommendations = mergeRecommendations(recommendations...)
	report.PasteCount = countDistinctPastes(report)

	if attempted > 0 && failed == attempted {
		report.Note = totalFailureNote
	}

	metrics.AggregationsTotal.WithLabelValues(string(report.RiskLevel)).Inc()

	return report
}

// fanOut launches one bounded lookup per applicable client and attribute and
// waits for all of them to settle.
func (a *Aggregator) fanOut(ctx context.Context, attrs []source.Attribute) []lookupResult {
	type task struct {
		client source.Client
		attr   source.Attribute
	}
	var tasks []task
	for _, attr := range attrs {
		for _, client := range a.clients {
			if client.Supports(attr.Kind) {
				tasks = append(tasks, task{client: client, attr: attr})
			}
		}
	}

	results := make([]lookupResult, len(tasks))

	var wg sync.WaitGroup
	for i, tk := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = a.lookup(ctx, tk.client, tk.attr)
		}()
	}
	wg.Wait()

	return results
}

// lookup runs one client call with its own timeout and records its outcome.
func (a *Aggregator) lookup(ctx context.Context, client source.Client, attr source.Attribute) lookupResult {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	start := time.Now()
	findings, err := client.Lookup(ctx, attr)
	elapsed := time.Since(start)

	outcome := metrics.OutcomeOK
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		outcome = metrics.OutcomeTimeout
	case err != nil:
		outcome = metrics.OutcomeError
	}
	metrics.SourceLookupDuration.WithLabelValues(client.Name(), outcome).Observe(elapsed.Seconds())

	if err != nil {
		logger.Warn(ctx, "source lookup failed",
			zap.String("source", client.Name()),
			zap.String("attribute_kind", string(attr.Kind)),
			zap.Error(err))
	} else {
		logger.Debug(ctx, "source lookup finished",
			zap.String("source", client.Name()),
			zap.String("attribute_kind", string(attr.Kind)),
			zap.Int("breaches", len(findings.Breaches)),
			zap.Int("pastes", len(findings.Pastes)),
			zap.Int("mentions", len(findings.Mentions)))
	}

	return lookupResult{
		client:   client.Name(),
		attr:     attr,
		findings: findings,
		err:      err,
	}
}

// buildEmailReport merges all email-attribute findings. Breach-database
// records from the primary source (priority zero) form the breach list;
// records from secondary leak indexes that reconcile with a primary breach
// are folded into it, the rest stay separate as leak results.
func (a *Aggregator) buildEmailReport(email string,
	results []lookupResult) (*domain.EmailExposureReport, domain.RiskLevel, []string) {
	report := &domain.EmailExposureReport{Email: email}

	var primary, secondary []domain.BreachRecord
	var pastes []domain.PasteMention
	succeeded := 0
	for _, r := range results {
		if r.err != nil {
			continue
		}
		succeeded++
		for _, b := range r.findings.Breaches {
			if a.priorities[b.SourceName] == 0 {
				primary = append(primary, b)
			} else {
				secondary = append(secondary, b)
			}
		}
		pastes = append(pastes, flagSensitive(r.findings.Pastes)...)
	}

	report.Breaches = dedupeBreaches(primary)
	for _, leak := range dedupeBreaches(secondary) {
		merged := false
		for i := range report.Breaches {
			if sameBreach(report.Breaches[i], leak) {
				report.Breaches[i] = mergeBreach(report.Breaches[i], leak)
				merged = true

				break
			}
		}
		if !merged {
			report.LeakResults = append(report.LeakResults, leak)
		}
	}
	report.Pastes = dedupePastes(pastes)

	sortBreaches(report.Breaches, a.priorities)
	sortBreaches(report.LeakResults, a.priorities)
	sortPastes(report.Pastes, a.priorities)

	report.TotalBreachCount = len(report.Breaches) + len(report.LeakResults)

	if succeeded == 0 {
		report.RiskLevel = domain.RiskUnknown

		return report, domain.RiskUnknown, nil
	}

	report.RiskLevel = a.scorer.ScoreEmail(*report)
	report.Recommendations = a.scorer.EmailRecommendations(*report)

	return report, report.RiskLevel, report.Recommendations
}

// buildUsernameReport merges all username- or full-name-attribute findings.
func (a *Aggregator) buildUsernameReport(identifier string,
	kind domain.IdentifierKind,
	results []lookupResult) (*domain.UsernameExposureReport, domain.RiskLevel, []string) {
	report := &domain.UsernameExposureReport{
		Identifier:     identifier,
		IdentifierKind: kind,
	}

	var pastes []domain.PasteMention
	succeeded := 0
	for _, r := range results {
		if r.err != nil {
			continue
		}
		succeeded++
		report.Mentions = append(report.Mentions, r.findings.Mentions...)
		pastes = append(pastes, flagSensitive(r.findings.Pastes)...)
	}

	report.Pastes = dedupePastes(pastes)
	sortPastes(report.Pastes, a.priorities)
	sortMentions(report.Mentions)

	if succeeded == 0 {
		report.RiskLevel = domain.RiskUnknown

		return report, domain.RiskUnknown, nil
	}

	report.RiskLevel = a.scorer.ScoreUsername(*report)
	report.Recommendations = a.scorer.UsernameRecommendations(*report)

	return report, report.RiskLevel, report.Recommendations
}

// flagSensitive applies the sensitive-content detectors once, at ingestion.
func flagSensitive(pastes []domain.PasteMention) []domain.PasteMention {
	out := make([]domain.PasteMention, len(pastes))
	for i, p := range pastes {
		if !p.ContainsSensitiveData {
			p.ContainsSensitiveData = ContainsSensitiveData(p.Excerpt)
		}
		out[i] = p
	}

	return out
}

// queryAttributes extracts the lookup attributes present in a query.
func queryAttributes(query domain.ExposureQuery) []source.Attribute {
	var attrs []source.Attribute
	if query.Email != "" {
		attrs = append(attrs, source.Attribute{Value: query.Email, Kind: source.AttributeEmail})
	}
	if query.Identifier != "" {
		kind := source.AttributeUsername
		if query.IdentifierKind == domain.IdentifierFullName {
			kind = source.AttributeFullName
		}
		attrs = append(attrs, source.Attribute{Value: query.Identifier, Kind: kind})
	}

	return attrs
}

func resultsFor(results []lookupResult, kind source.AttributeKind) []lookupResult {
	var out []lookupResult
	for _, r := range results {
		if r.attr.Kind == kind {
			out = append(out, r)
		}
	}

	return out
}

// combineAttrRisks folds the per-attribute risks, treating unknown as the
// bottom of the order so it never masks a real finding.
func combineAttrRisks(risks map[source.AttributeKind]domain.RiskLevel) domain.RiskLevel {
	combined := domain.RiskUnknown
	for _, r := range risks {
		combined = domain.MaxRisk(combined, r)
	}

	return combined
}

// countDistinctPastes sizes the deduplicated union of pastes across both
// sub-reports; a paste found via both attributes counts once.
func countDistinctPastes(report domain.CombinedExposureReport) int {
	seen := make(map[string]struct{})
	if report.EmailReport != nil {
		for _, p := range report.EmailReport.Pastes {
			seen[normalizePasteURL(p.URL)] = struct{}{}
		}
	}
	if report.UsernameReport != nil {
		for _, p := range report.UsernameReport.Pastes {
			seen[normalizePasteURL(p.URL)] = struct{}{}
		}
	}

	return len(seen)
}
