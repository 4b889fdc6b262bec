package model_test

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/ubiqedu/marketing-agent-backend/internal/errors"
	"github.com/ubiqedu/marketing-agent-backend/internal/model"
)

func validForm() model.CampaignForm {
	return model.CampaignForm{
		Topic:         "Wellbeing Week",
		DurationWeeks: 2,
		Tone:          "friendly",
		Channels:      []string{"email"},
		Mode:          model.ModeManual,
		Notifications: []string{},
	}
}

func TestNormalizeForcesDailyIterationForAutonomous(t *testing.T) {
	form := validForm()
	form.Mode = model.ModeAutonomous
	form.DailyIteration = false

	form.Normalize()

	if !form.DailyIteration {
		t.Errorf("expected dailyIteration to be forced true in autonomous mode")
	}
}

func TestNormalizeLeavesManualAlone(t *testing.T) {
	form := validForm()
	form.DailyIteration = false

	form.Normalize()

	if form.DailyIteration {
		t.Errorf("manual mode must not force dailyIteration")
	}
}

func TestNormalizeDefaultsEmptyModeToManual(t *testing.T) {
	form := validForm()
	form.Mode = ""

	form.Normalize()

	if form.Mode != model.ModeManual {
		t.Errorf("expected manual, got %s", form.Mode)
	}
}

func TestValidateManualNeedsNoStartDate(t *testing.T) {
	form := validForm()
	form.StartDate = nil

	if err := form.Validate(time.Now()); err != nil {
		t.Errorf("manual mode must not require a start date, got %v", err)
	}
}

func TestValidateAutonomousRequiresStartDate(t *testing.T) {
	form := validForm()
	form.Mode = model.ModeAutonomous
	form.DailyIteration = true
	form.StartDate = nil

	err := form.Validate(time.Now())
	if err == nil {
		t.Fatalf("expected validation error for missing start date")
	}
	var validation *apperrors.ValidationError
	if !errors.As(err, &validation) {
		t.Fatalf("expected ValidationError, got %T", err)
	}
	if validation.Field != "startDate" {
		t.Errorf("expected startDate field, got %s", validation.Field)
	}
}

func TestValidateRejectsPastStartDate(t *testing.T) {
	form := validForm()
	form.Mode = model.ModeAutonomous
	form.DailyIteration = true
	yesterday := time.Now().Add(-48 * time.Hour)
	form.StartDate = &yesterday

	if err := form.Validate(time.Now()); err == nil {
		t.Errorf("expected validation error for past start date")
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*model.CampaignForm)
		field  string
	}{
		{"empty topic", func(f *model.CampaignForm) { f.Topic = "   " }, "topic"},
		{"missing tone", func(f *model.CampaignForm) { f.Tone = "" }, "tone"},
		{"unknown tone", func(f *model.CampaignForm) { f.Tone = "sarcastic" }, "tone"},
		{"no channels", func(f *model.CampaignForm) { f.Channels = nil }, "channels"},
		{"unknown channel", func(f *model.CampaignForm) { f.Channels = []string{"carrier-pigeon"} }, "channels"},
		{"duration too short", func(f *model.CampaignForm) { f.DurationWeeks = 0 }, "duration"},
		{"duration too long", func(f *model.CampaignForm) { f.DurationWeeks = 7 }, "duration"},
		{"unknown mode", func(f *model.CampaignForm) { f.Mode = "hybrid" }, "mode"},
		{"unknown notification", func(f *model.CampaignForm) { f.Notifications = []string{"pager"} }, "notifications"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validForm()
			tc.mutate(&form)

			err := form.Validate(time.Now())
			if err == nil {
				t.Fatalf("expected validation error")
			}
			var validation *apperrors.ValidationError
			if !errors.As(err, &validation) {
				t.Fatalf("expected ValidationError, got %T", err)
			}
			if validation.Field != tc.field {
				t.Errorf("expected field %s, got %s", tc.field, validation.Field)
			}
		})
	}
}
