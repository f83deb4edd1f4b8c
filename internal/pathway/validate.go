package pathway

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const schemaURL = "schema://pathway.json"

// contractSchema is the JSON shape every pathway must encode to.
const contractSchema = `{
  "type": "object",
  "required": ["id", "title", "description", "modules", "total_duration_weeks",
               "difficulty_progression", "target_role", "skills_covered",
               "learning_objectives", "adaptation_metadata"],
  "properties": {
    "id": {"type": "string", "minLength": 1},
    "title": {"type": "string"},
    "description": {"type": "string"},
    "total_duration_weeks": {"type": "integer", "minimum": 1},
    "difficulty_progression": {"type": "array", "items": {"$ref": "#/$defs/difficulty"}},
    "target_role": {"type": "string"},
    "skills_covered": {"type": "array", "items": {"type": "string"}},
    "learning_objectives": {"type": "array", "items": {"type": "string"}},
    "adaptation_metadata": {
      "type": "object",
      "required": ["created_at", "learning_profile", "optimization_version"]
    },
    "modules": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "name", "description", "topics", "estimated_weeks", "difficulty", "module_type"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "estimated_weeks": {"type": "integer", "minimum": 1},
          "difficulty": {"$ref": "#/$defs/difficulty"},
          "module_type": {"enum": ["core", "project"]},
          "topics": {"type": "array", "items": {"$ref": "#/$defs/topic"}}
        }
      }
    }
  },
  "$defs": {
    "difficulty": {"enum": ["beginner", "intermediate", "advanced"]},
    "topic": {
      "type": "object",
      "required": ["id", "name", "description", "difficulty", "estimated_hours",
                   "prerequisites", "skills_gained", "priority", "resources"],
      "properties": {
        "id": {"type": "string", "minLength": 1},
        "difficulty": {"$ref": "#/$defs/difficulty"},
        "estimated_hours": {"type": "number", "minimum": 0},
        "prerequisites": {"type": "array", "items": {"type": "string"}},
        "skills_gained": {"type": "array", "items": {"type": "string"}},
        "priority": {"type": "number"},
        "resources": {"type": "array", "items": {"$ref": "#/$defs/resource"}}
      }
    },
    "resource": {
      "type": "object",
      "required": ["id", "title", "description", "url", "platform", "type", "duration",
                   "difficulty", "rating", "enrollment_count", "tags", "language",
                   "last_updated", "instructor", "thumbnail"],
      "properties": {
        "url": {"type": "string", "pattern": "^https?://"},
        "duration": {"type": ["integer", "null"]},
        "difficulty": {"$ref": "#/$defs/difficulty"},
        "rating": {"type": ["number", "null"]},
        "enrollment_count": {"type": ["integer", "null"]},
        "tags": {"type": "array", "items": {"type": "string"}},
        "last_updated": {"type": ["string", "null"]},
        "instructor": {"type": ["string", "null"]},
        "thumbnail": {"type": ["string", "null"]}
      }
    }
  }
}`

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func contract() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(contractSchema))
		if err != nil {
			compileErr = fmt.Errorf("parse pathway schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("add pathway schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Validate checks p against the JSON contract and its structural
// invariants: unique module and topic IDs and module weeks that add up to
// the total duration.
func Validate(p *Pathway) error {
	if p == nil {
		return errors.New("nil pathway")
	}

	schema, err := contract()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal pathway: %w", err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse pathway: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("pathway %s: %w", p.ID, err)
	}

	var errs []error
	modules := make(map[string]bool, len(p.Modules))
	topics := make(map[string]bool)
	weeks := 0
	for _, m := range p.Modules {
		if modules[m.ID] {
			errs = append(errs, fmt.Errorf("duplicate module id %q", m.ID))
		}
		modules[m.ID] = true
		weeks += m.EstimatedWeeks
		for _, t := range m.Topics {
			if topics[t.ID] {
				errs = append(errs, fmt.Errorf("duplicate topic id %q", t.ID))
			}
			topics[t.ID] = true
		}
	}
	if weeks != p.TotalDurationWeeks {
		errs = append(errs, fmt.Errorf("module weeks sum to %d, total is %d", weeks, p.TotalDurationWeeks))
	}
	if len(p.DifficultyProgression) != p.TotalDurationWeeks {
		errs = append(errs, fmt.Errorf("difficulty progression has %d weeks, total is %d",
			len(p.DifficultyProgression), p.TotalDurationWeeks))
	}
	return errors.Join(errs...)
}
