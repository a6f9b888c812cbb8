package question

// Normalizers for the session-adjacent records: daily plan, session
// summary, retry-wrong result and the per-question results report. Same
// rules as question normalization — alias tables, first present wins,
// ShapeError only on structural trouble.

// NormalizePlan converts a raw plan payload. A payload with neither a set
// id nor question ids is treated as "no plan exists for that day" unless
// an explicit exists flag says otherwise.
func NormalizePlan(v any) (DailyPlan, error) {
	raw, ok := v.(map[string]any)
	if !ok {
		return DailyPlan{}, &ShapeError{Want: "object", Got: v}
	}

	p := DailyPlan{}
	p.Date, _ = fieldString(raw, planDateAliases)
	p.Role, _ = fieldString(raw, planRoleAliases)
	if marker, ok := fieldString(raw, typeAliases); ok {
		p.Kind, _ = ParseKind(marker)
	}
	p.SessionSetID, _ = fieldInt64(raw, setIDAliases)
	p.QuestionIDs, _ = fieldInt64List(raw, questionIDsAliases)
	if n, ok := fieldInt64(raw, countAliases); ok {
		p.QuestionCount = int(n)
	} else {
		p.QuestionCount = len(p.QuestionIDs)
	}

	if b, ok := fieldBool(raw, existsAliases); ok {
		p.Exists = b
	} else {
		p.Exists = p.SessionSetID != 0 || len(p.QuestionIDs) > 0
	}
	return p, nil
}

// NormalizeSummary converts a raw session-summary payload.
func NormalizeSummary(v any) (Summary, error) {
	raw, ok := v.(map[string]any)
	if !ok {
		return Summary{}, &ShapeError{Want: "object", Got: v}
	}

	s := Summary{}
	s.SessionID, _ = fieldInt64(raw, sessionIDAliases)
	if marker, ok := fieldString(raw, typeAliases); ok {
		s.Kind, _ = ParseKind(marker)
	}
	if st, ok := fieldString(raw, statusAliases); ok {
		s.Status = ParseStatus(st)
	} else {
		s.Status = StatusCreated
	}
	s.SetID, _ = fieldInt64(raw, setIDAliases)
	return s, nil
}

// NormalizeRetryResult converts the response of a retry-wrong request.
func NormalizeRetryResult(v any) (RetryResult, error) {
	raw, ok := v.(map[string]any)
	if !ok {
		return RetryResult{}, &ShapeError{Want: "object", Got: v}
	}

	r := RetryResult{}
	r.NewSessionID, _ = fieldInt64(raw, retrySessionIDAliases)
	if marker, ok := fieldString(raw, typeAliases); ok {
		r.Kind, _ = ParseKind(marker)
	}
	if n, ok := fieldInt64(raw, countAliases); ok {
		r.QuestionCount = int(n)
	}
	r.PlayPath, _ = fieldString(raw, playPathAliases)
	return r, nil
}

// NormalizeReport converts a raw results-report list into per-question
// entries keyed for correctness repair. Invalid entries are skipped.
func NormalizeReport(list []any) []ReportEntry {
	out := make([]ReportEntry, 0, len(list))
	for _, v := range list {
		raw, ok := v.(map[string]any)
		if !ok {
			continue
		}
		e := ReportEntry{}
		e.QuestionID, _ = fieldInt64(raw, questionIDAliases)
		e.Correct, _ = fieldBool(raw, reportCorrectAliases)
		e.CorrectChoiceID, _ = fieldInt64(raw, correctChoiceIDAliases)
		if e.QuestionID == 0 {
			continue
		}
		out = append(out, e)
	}
	return out
}
