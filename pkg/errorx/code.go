package errorx

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Common codes
	BadRequest       Code = 100001
	BadResponse      Code = 100002
	PermissionDenied Code = 100003
	NotFound         Code = 100004
	Unauthenticated  Code = 100005
	AlreadyExists    Code = 100006
	Internal         Code = 100007
	Unavailable      Code = 100008

	// Quest codes
	ActiveQuestExists     Code = 200001
	AlreadyCompletedToday Code = 200002
	DailyCapReached       Code = 200003

	// Skill codes
	NotEnoughExp Code = 300001
)
