//
//  Copyright 2012 Dmitry Kolesnikov, All Rights Reserved
//
//  Licensed under the Apache License, Version 2.0 (the "License");
//  you may not use this file except in compliance with the License.
//  You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
//  Unless required by applicable law or agreed to in writing, software
//  distributed under the License is distributed on an "AS IS" BASIS,
//  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//  See the License for the specific language governing permissions and
//  limitations under the License.
//

package stamp

import "github.com/pkg/errors"

var (
	// ErrInvalidCalendarFields is returned when packed value decodes into
	// components that do not form a real calendar date (e.g. February 30).
	ErrInvalidCalendarFields = errors.New("invalid calendar fields")

	// ErrClockRegression is returned when the clock reports an instant
	// before 1900-01-01, the epoch of sequential identifiers.
	ErrClockRegression = errors.New("clock regression before epoch")

	// ErrMalformed is returned by parsers of textual forms
	ErrMalformed = errors.New("malformed identifier")
)
