package models

import (
	"strings"
)

// Recognized roster columns
const (
	FieldSeatNo          = "Seat No"
	FieldName            = "Name"
	FieldSubjectsApplied = "Subjects Applied"
)

// Defaults applied when a request omits a text field
const (
	DefaultInstitution = "GURU NANAK DEV ENGINEERING COLLEGE, BIDAR"
	DefaultDeptName    = "INFORMATION SCIENCE ENGINEERING"
	DefaultExamName    = "B.E EXAMINATION JUNE / JULY 2025"
)

// Subject selection modes
type SubjectMode string

const (
	SubjectsFromSheet SubjectMode = "fromSheet"
	SubjectsManual    SubjectMode = "manual"
)

// Record is one roster row keyed by column header.
type Record map[string]string

// Get returns the value for a field, or "" when the column is absent.
func (r Record) Get(field string) string {
	if r == nil {
		return ""
	}
	return r[field]
}

func (r Record) SeatNo() string          { return r.Get(FieldSeatNo) }
func (r Record) Name() string            { return r.Get(FieldName) }
func (r Record) SubjectsApplied() string { return r.Get(FieldSubjectsApplied) }

// WithSubjects returns a copy of the record whose subject list is replaced
// by the given subjects joined with ", ".
func (r Record) WithSubjects(subjects []string) Record {
	out := make(Record, len(r)+1)
	for k, v := range r {
		out[k] = v
	}
	out[FieldSubjectsApplied] = strings.Join(subjects, ", ")
	return out
}

// Logo is an image ready for embedding. Type is the fpdf image type
// ("JPG", "PNG" or "GIF").
type Logo struct {
	Data []byte
	Type string
}

// TicketConfig applies uniformly to every ticket of one request.
type TicketConfig struct {
	Institution    string
	DeptName       string
	ExamName       string
	Semester       string
	Logo           *Logo
	SubjectMode    SubjectMode
	CustomSubjects []string
}

// ManualOverride reports whether every record's subjects are replaced by
// CustomSubjects. Manual mode with an empty list leaves records untouched.
func (c TicketConfig) ManualOverride() bool {
	return c.SubjectMode == SubjectsManual && len(c.CustomSubjects) > 0
}

// SemesterLabel is the text shown after the seat number.
func (c TicketConfig) SemesterLabel() string {
	if c.Semester == "" {
		return "Semester: Not specified"
	}
	return "Semester: " + c.Semester
}

// Response types

type ErrorResponse struct {
	Error string `json:"error"`
}

// FunctionEvent is the request envelope handed to a stateless function.
type FunctionEvent struct {
	HTTPMethod      string            `json:"httpMethod"`
	Path            string            `json:"path"`
	Headers         map[string]string `json:"headers"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded"`
}

// Header looks up a header case-insensitively.
func (e FunctionEvent) Header(name string) string {
	if v, ok := e.Headers[name]; ok {
		return v
	}
	for k, v := range e.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// FunctionResponse is the buffered reply of a stateless function.
type FunctionResponse struct {
	StatusCode      int               `json:"statusCode"`
	Headers         map[string]string `json:"headers,omitempty"`
	Body            string            `json:"body"`
	IsBase64Encoded bool              `json:"isBase64Encoded,omitempty"`
}
