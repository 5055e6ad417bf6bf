package apperror

// Generic messages shown when the API gives no detail.
const (
	MsgLoadEmployees    = "Failed to load employees"
	MsgSaveEmployee     = "Something went wrong. Please try again."
	MsgDeleteEmployee   = "Failed to delete employee"
	MsgLoadAttendance   = "Failed to load attendance"
	MsgSaveAttendance   = "Something went wrong"
	MsgDeleteAttendance = "Failed to delete attendance"
)
