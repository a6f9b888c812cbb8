package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// submissionSchema is the contract every outbound submit payload must meet.
// Answers are all-or-nothing: the orchestrator already refuses unresolved
// answers, and this gate guarantees nothing malformed crosses the wire even
// if a future call site skips that check.
const submissionSchema = `{
	"type": "object",
	"required": ["sessionId", "answers"],
	"properties": {
		"sessionId": {"type": "integer", "minimum": 1},
		"elapsedSec": {"type": "integer", "minimum": 0},
		"answers": {
			"type": "array",
			"minItems": 1,
			"items": {
				"type": "object",
				"required": ["questionId", "choiceId"],
				"properties": {
					"questionId": {"type": "integer", "minimum": 1},
					"choiceId": {"type": "integer", "minimum": 1}
				}
			}
		}
	}
}`

var (
	submissionCompiled *jsonschema.Schema
	submissionOnce     sync.Once
	submissionErr      error
)

func compiledSubmissionSchema() (*jsonschema.Schema, error) {
	submissionOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(submissionSchema), &def); err != nil {
			submissionErr = fmt.Errorf("parse submission schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://submission.json", def); err != nil {
			submissionErr = fmt.Errorf("add resource: %w", err)
			return
		}
		submissionCompiled, submissionErr = c.Compile("schema://submission.json")
	})
	return submissionCompiled, submissionErr
}

// validateSubmission checks sub against the wire contract.
func validateSubmission(sub Submission) error {
	compiled, err := compiledSubmissionSchema()
	if err != nil {
		return err
	}

	b, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("marshal submission: %w", err)
	}
	var parsed any
	if err := json.Unmarshal(b, &parsed); err != nil {
		return fmt.Errorf("reparse submission: %w", err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("submission rejected by contract: %w", err)
	}
	return nil
}
