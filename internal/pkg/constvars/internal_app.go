package constvars

type ContextKey string

const (
	CONTEXT_SESSION_DATA_KEY         ContextKey = "sessionData"
	CONTEXT_SESSION_ID_KEY           ContextKey = "sessionID"
	CONTEXT_REQUEST_ID_KEY           ContextKey = "requestID"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "isClientRequestID"
)

const (
	ResourceAuth              = "auth"
	ResourceUsers             = "users"
	ResourceMuscles           = "muscles"
	ResourceExercises         = "exercises"
	ResourceWorkouts          = "workouts"
	ResourceMoods             = "moods"
	ResourceEmergencyContacts = "emergency-contacts"
	ResourceHelplines         = "helplines"
	ResourcePenpals           = "penpals"
)

const (
	MongoCollectionUsers             = "users"
	MongoCollectionMuscles           = "muscles"
	MongoCollectionExercises         = "exercises"
	MongoCollectionWorkouts          = "workouts"
	MongoCollectionMoods             = "moods"
	MongoCollectionEmergencyContacts = "emergency_contacts"
	MongoCollectionHelplines         = "helplines"
	MongoCollectionPenpalRelations   = "penpal_relations"
	MongoCollectionPenpalMessages    = "penpal_messages"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

// Day type buckets for helpline availability windows.
const (
	DayTypeWeekday = "weekday"
	DayTypeWeekend = "weekend"
)

// Contact method kinds a helpline can expose.
const (
	ContactMethodVoice   = "voice"
	ContactMethodText    = "text"
	ContactMethodEmail   = "email"
	ContactMethodWebchat = "webchat"
)

// Pen-pal relation states.
const (
	PenpalRelationPending  = "pending"
	PenpalRelationAccepted = "accepted"
	PenpalRelationDeclined = "declined"
)

const (
	QueryParamOpenNow  = "openNow"
	QueryParamMuscle   = "muscle"
	QueryParamFromDate = "from"
	QueryParamToDate   = "to"
)
