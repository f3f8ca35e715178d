package model

// Sentinel values stored when an optional field was left empty.
const (
	CompanyNotProvided   = "Not provided"
	InterestNotSpecified = "not-specified"
	InterestLabelNone    = "Not specified"
)

// StatusNew is the initial (and only) status of a stored submission.
// No lifecycle transitions exist.
const StatusNew = "new"

// TimestampLayout is the fixed textual format for CreatedAt:
// UTC, second precision.
const TimestampLayout = "2006-01-02T15:04:05Z"

// Submission represents one contact-form entry as it is persisted.
type Submission struct {
	ID            string `json:"contact_id" dynamodbav:"contact_id"`
	Name          string `json:"name" dynamodbav:"name"`
	Email         string `json:"email" dynamodbav:"email"`
	Company       string `json:"company" dynamodbav:"company"`
	Interest      string `json:"interest" dynamodbav:"interest"`
	InterestLabel string `json:"interest_label" dynamodbav:"interest_label"`
	Message       string `json:"message" dynamodbav:"message"`
	CreatedAt     string `json:"created_at" dynamodbav:"created_at"`
	Status        string `json:"status" dynamodbav:"status"`
}

// SubmissionListOptions carries pagination parameters for listing submissions.
type SubmissionListOptions struct {
	Limit  int
	Offset int
}

// interestLabels maps interest codes from the website form to display labels.
var interestLabels = map[string]string{
	"data-engineering": "Data Engineering",
	"ai-ml":            "AI & Machine Learning",
	"genai":            "Generative AI",
	"bi":               "Business Intelligence",
	"mlops":            "MLOps",
	"cloud-migration":  "Cloud Migration",
	"aws-poc":          "AWS POC Program",
	"other":            "Other",
}

// InterestLabel resolves an interest code to its display label.
// Unknown codes fall back to the raw code; an empty code resolves to
// InterestLabelNone.
func InterestLabel(code string) string {
	if code == "" {
		return InterestLabelNone
	}
	if label, ok := interestLabels[code]; ok {
		return label
	}
	return code
}
