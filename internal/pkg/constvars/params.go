package constvars

const (
	URLParamID        = "id"
	URLParamPatientID = "patientId"
	URLParamRecordID  = "recordId"
)
