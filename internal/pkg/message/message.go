package message

const (
	InvalidInput  = "Invalid input."
	CreateSuccess = "create success"
	DeleteSuccess = "delete success"
	CreateFailed  = "Unable to create the model."
	DeleteFailed  = "Unable to delete the model."
	ListFailed    = "Unable to list the models."
)
