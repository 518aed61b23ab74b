// SkillBridge - Mentor-Learner Matching Engine
// Copyright 2026 TheACJ
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/TheACJ/SkillBridge

package validation

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/TheACJ/SkillBridge-sub000/internal/matching"
)

func validRequest() matching.MatchRequest {
	return matching.MatchRequest{
		Learner: matching.LearnerProfile{
			ID:              uuid.New(),
			Skills:          []string{"python"},
			LearningGoals:   []string{"rust"},
			Location:        "Lagos",
			Availability:    10,
			ExperienceLevel: "beginner",
		},
		Mentors: []matching.MentorProfile{
			{ID: uuid.New(), Expertise: []string{"rust"}},
		},
	}
}

func intPtr(v int) *int { return &v }

func TestGetValidator_Singleton(t *testing.T) {
	var wg sync.WaitGroup
	results := make(chan interface{}, 10)

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results <- GetValidator()
		}()
	}
	wg.Wait()
	close(results)

	first := GetValidator()
	for v := range results {
		if v != first {
			t.Error("GetValidator returned different instances")
		}
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*matching.MatchRequest)
	}{
		{"minimal", func(*matching.MatchRequest) {}},
		{"explicit limit", func(r *matching.MatchRequest) { r.Limit = intPtr(3) }},
		{"zero availability", func(r *matching.MatchRequest) { r.Learner.Availability = 0 }},
		{"mixed case level", func(r *matching.MatchRequest) { r.Learner.ExperienceLevel = "Advanced" }},
		{"empty pool", func(r *matching.MatchRequest) { r.Mentors = nil }},
		{"malformed mentor is not a request error", func(r *matching.MatchRequest) {
			r.Mentors = append(r.Mentors, matching.MentorProfile{Rating: 9})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			if err := ValidateStruct(&req); err != nil {
				t.Errorf("ValidateStruct() = %v, want nil", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*matching.MatchRequest)
		wantField string
		wantTag   string
	}{
		{
			name:      "nil learner id",
			mutate:    func(r *matching.MatchRequest) { r.Learner.ID = uuid.Nil },
			wantField: "learner.id",
			wantTag:   "required",
		},
		{
			name:      "negative availability",
			mutate:    func(r *matching.MatchRequest) { r.Learner.Availability = -1 },
			wantField: "learner.availability",
			wantTag:   "gte",
		},
		{
			name:      "missing experience level",
			mutate:    func(r *matching.MatchRequest) { r.Learner.ExperienceLevel = "" },
			wantField: "learner.experience_level",
			wantTag:   "required",
		},
		{
			name:      "unknown experience level",
			mutate:    func(r *matching.MatchRequest) { r.Learner.ExperienceLevel = "expert" },
			wantField: "learner.experience_level",
			wantTag:   "experience_level",
		},
		{
			name:      "zero limit",
			mutate:    func(r *matching.MatchRequest) { r.Limit = intPtr(0) },
			wantField: "limit",
			wantTag:   "gte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := ValidateStruct(&req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if len(err.Errors()) != 1 {
				t.Fatalf("got %d errors, want 1: %v", len(err.Errors()), err)
			}
			fe := err.Errors()[0]
			if fe.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", fe.Field(), tt.wantField)
			}
			if fe.Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", fe.Tag(), tt.wantTag)
			}
			if err.FirstField() != tt.wantField {
				t.Errorf("FirstField() = %q, want %q", err.FirstField(), tt.wantField)
			}
			if !strings.HasPrefix(fe.Error(), tt.wantField) {
				t.Errorf("message %q should start with the field path", fe.Error())
			}
		})
	}
}

func TestToAPIError_SingleError(t *testing.T) {
	req := validRequest()
	req.Learner.Availability = -5

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %s, want %s", apiErr.Code, ErrorCode)
	}
	if apiErr.Message != "learner.availability must be greater than or equal to 0" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "learner.availability" {
		t.Errorf("Details[field] = %v", apiErr.Details["field"])
	}
	if apiErr.Details["value"] != -5 {
		t.Errorf("Details[value] = %v, want -5", apiErr.Details["value"])
	}
}

func TestToAPIError_CompositeValueOmitted(t *testing.T) {
	req := validRequest()
	req.Learner = matching.LearnerProfile{}

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if v, ok := err.ToAPIError().Details["value"]; ok {
		t.Errorf("Details echoes a composite value: %v", v)
	}

	tests := []struct {
		name      string
		value     interface{}
		wantValue bool
	}{
		{"int", -5, true},
		{"string", "expert", true},
		{"struct", matching.LearnerProfile{}, false},
		{"slice", []string{"go"}, false},
		{"map", map[string]int{"a": 1}, false},
		{"pointer", intPtr(3), false},
		{"uuid", uuid.Nil, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &RequestValidationError{errors: []ValidationError{
				{field: "learner", tag: "required", value: tt.value, message: "learner is required"},
			}}
			_, got := ve.ToAPIError().Details["value"]
			if got != tt.wantValue {
				t.Errorf("value present = %v, want %v", got, tt.wantValue)
			}
		})
	}
}

func TestToAPIError_MultipleErrors(t *testing.T) {
	req := validRequest()
	req.Learner.Availability = -1
	req.Limit = intPtr(-3)

	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) != 2 {
		t.Fatalf("got %d field errors, want 2", len(fields))
	}
	if !strings.Contains(apiErr.Message, "; ") {
		t.Errorf("Message %q should join both errors", apiErr.Message)
	}
}

func TestToAPIError_Empty(t *testing.T) {
	apiErr := (&RequestValidationError{}).ToAPIError()
	if apiErr.Code != ErrorCode || apiErr.Message != "Validation failed" {
		t.Errorf("unexpected empty conversion: %+v", apiErr)
	}
	if (&RequestValidationError{}).Error() != "validation failed" {
		t.Error("empty Error() should be generic")
	}
}

func TestErrorMessages(t *testing.T) {
	type sample struct {
		Name  string `json:"name" validate:"min=3"`
		Count int    `json:"count" validate:"max=5"`
		Mode  string `json:"mode" validate:"oneof=fast slow"`
	}

	err := ValidateStruct(&sample{Name: "ab", Count: 9, Mode: "other"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	want := map[string]string{
		"name":  "name must be at least 3 characters",
		"count": "count must be at most 5",
		"mode":  "mode must be one of: fast slow",
	}
	got := make(map[string]string)
	for _, fe := range err.Errors() {
		got[fe.Field()] = fe.Error()
	}
	for field, msg := range want {
		if got[field] != msg {
			t.Errorf("%s: got %q, want %q", field, got[field], msg)
		}
	}
}

func TestValidateMatchRequest(t *testing.T) {
	req := validRequest()
	if err := ValidateMatchRequest(&req); err != nil {
		t.Fatalf("ValidateMatchRequest() = %v, want nil", err)
	}

	req.Learner.Availability = -2
	err := ValidateMatchRequest(&req)

	var ve *matching.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *matching.ValidationError, got %T", err)
	}
	if ve.Field != "learner.availability" {
		t.Errorf("Field = %q", ve.Field)
	}

	var rve *RequestValidationError
	if !errors.As(err, &rve) {
		t.Fatal("expected the tag errors to be reachable with errors.As")
	}
	if rve.ToAPIError().Details["tag"] != "gte" {
		t.Errorf("tag detail = %v", rve.ToAPIError().Details["tag"])
	}
}

func TestValidateMatchRequest_EngineHook(t *testing.T) {
	engine, err := matching.NewEngine(nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	engine.SetRequestValidator(ValidateMatchRequest)

	req := validRequest()
	req.Learner.ExperienceLevel = "guru"

	_, err = engine.Match(context.Background(), &req)
	if !matching.IsValidationError(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if got := engine.Stats().ValidationErrors; got != 1 {
		t.Errorf("ValidationErrors = %d, want 1", got)
	}
}
