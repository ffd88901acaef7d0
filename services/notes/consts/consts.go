package consts

const (
	// Styles
	StyleGeneric    = "generic"
	StyleMeeting    = "meeting"
	StyleLecture    = "lecture"
	StyleInterview  = "interview"
	StyleBrainstorm = "brainstorm"

	DefaultStyle = StyleGeneric

	// Form fields
	FieldTextFile   = "file"
	FieldPromptType = "prompt_type"
	FieldAudioFile  = "audio"
	FieldStyle      = "style"

	// Multipart bodies above this size spill to disk while parsing.
	MaxAudioSize = 25 * 1024 * 1024 // 25MB

	LivenessMessage = "Backend is running!"
)
