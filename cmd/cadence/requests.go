// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/go-playground/validator/v10"

	"github.com/AleutianAI/cadence/pkg/validation"
)

// inputValidate is the validator instance for CLI inputs.
var inputValidate *validator.Validate

func init() {
	inputValidate = validator.New()

	// Custom validators for domain formats.
	_ = inputValidate.RegisterValidation("calendarday", validateCalendarDay)
	_ = inputValidate.RegisterValidation("habitname", validateHabitName)
	_ = inputValidate.RegisterValidation("habiticon", validateHabitIcon)
}

func validateCalendarDay(fl validator.FieldLevel) bool {
	return validation.ValidateDay(fl.Field().String()) == nil
}

func validateHabitName(fl validator.FieldLevel) bool {
	return validation.ValidateHabitName(fl.Field().String()) == nil
}

func validateHabitIcon(fl validator.FieldLevel) bool {
	return validation.ValidateIcon(fl.Field().String()) == nil
}

// AddHabitRequest carries validated input for the add command.
type AddHabitRequest struct {
	Name string `validate:"required,habitname"`
	Icon string `validate:"habiticon"`
}

// Validate validates the AddHabitRequest fields.
func (r *AddHabitRequest) Validate() error {
	return inputValidate.Struct(r)
}

// ToggleRequest carries validated input for the toggle command.
type ToggleRequest struct {
	HabitID string `validate:"required"`
	Day     string `validate:"required,calendarday"`
}

// Validate validates the ToggleRequest fields.
func (r *ToggleRequest) Validate() error {
	return inputValidate.Struct(r)
}

// ThemeRequest carries validated input for the theme command.
type ThemeRequest struct {
	Theme string `validate:"required,oneof=light dark"`
}

// Validate validates the ThemeRequest fields.
func (r *ThemeRequest) Validate() error {
	return inputValidate.Struct(r)
}
