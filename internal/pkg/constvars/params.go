package constvars

const (
	URLParamID = "id"
)

const (
	URLQueryParamDate     = "date"
	URLQueryParamDoctorID = "doctor_id"
	URLQueryParamExpand   = "expand"
	URLQueryParamFrom     = "from"
	URLQueryParamTo       = "to"
)
