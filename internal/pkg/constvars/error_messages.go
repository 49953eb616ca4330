package constvars

// Client-facing error messages. Kept intentionally vague for anything that
// could leak internals.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again later"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientTooManyRequests               = "Too many requests, please slow down"

	ErrClientInvalidUsernameOrPassword = "Invalid username or password"
	ErrClientPasswordsDoNotMatch       = "Passwords do not match"
	ErrClientEmailAlreadyExists        = "Email is already registered"
	ErrClientUsernameAlreadyExists     = "Username is already taken"
	ErrClientInvalidImageFormat        = "Profile picture format is not supported"

	ErrClientMuscleNotFound           = "Muscle not found"
	ErrClientMuscleAlreadyExists      = "A muscle with that name already exists"
	ErrClientExerciseNotFound         = "Exercise not found"
	ErrClientWorkoutNotFound          = "Workout not found"
	ErrClientMoodEntryNotFound        = "Mood entry not found"
	ErrClientEmergencyContactNotFound = "Emergency contact not found"
	ErrClientHelplineNotFound         = "Helpline not found"

	ErrClientPenpalUserNotFound       = "No user with that username exists"
	ErrClientPenpalRequestNotFound    = "Friend request not found"
	ErrClientPenpalAlreadyFriends     = "You are already pen pals with this user"
	ErrClientPenpalRequestPending     = "A friend request between you is already pending"
	ErrClientPenpalNotFriends         = "You are not pen pals with this user"
	ErrClientPenpalCannotBefriendSelf = "You cannot send a friend request to yourself"
)

// Developer-facing error messages, logged but never returned to clients in
// production.
const (
	ErrDevValidationFailed               = "Request validation failed"
	ErrDevCannotParseJSON                = "Failed to parse JSON request body"
	ErrDevCannotParseQueryParams         = "Failed to parse query parameters"
	ErrDevURLParamIDValidationFailed     = "URL parameter '%s' is not a valid identifier"
	ErrDevImageValidationFailed          = "Profile picture failed validation"
	ErrDevFailedToHashPassword           = "Failed to hash password"
	ErrDevInvalidCredentials             = "Credentials do not match any user"
	ErrDevPasswordsDoNotMatch            = "Password and retype password differ"
	ErrDevEmailAlreadyExists             = "Email already present in users collection"
	ErrDevUsernameAlreadyExists          = "Username already present in users collection"
	ErrDevUserNotExists                  = "User document not found"
	ErrDevServerDeadlineExceeded         = "Context deadline exceeded"
	ErrDevResourceNotFound               = "Requested document not found"
	ErrDevResourceNotOwned               = "Requested document is not owned by the session user"
	ErrDevDuplicateResource              = "Document with the same unique key already exists"
	ErrDevInvalidDayType                 = "Day type must be weekday or weekend"

	ErrDevAuthTokenMissing          = "Authorization header missing"
	ErrDevAuthTokenInvalid          = "Authorization token is invalid"
	ErrDevAuthTokenInvalidOrExpired = "Authorization token is invalid or has expired"
	ErrDevAuthSigningMethod         = "Unexpected JWT signing method"
	ErrDevAuthGenerateToken         = "Failed to sign JWT"
	ErrDevAuthInvalidSession        = "Session not found in store"

	ErrDevDBFailedToFindDocument     = "MongoDB failed to find document"
	ErrDevDBFailedToInsertDocument   = "MongoDB failed to insert document"
	ErrDevDBFailedToUpdateDocument   = "MongoDB failed to update document"
	ErrDevDBFailedToDeleteDocument   = "MongoDB failed to delete document"
	ErrDevDBFailedToIterateDocuments = "MongoDB failed to iterate cursor"
	ErrDevDBStringNotObjectID        = "String is not a valid MongoDB ObjectID"

	ErrDevRedisStoreSession = "Failed to store session in Redis"
	ErrDevRedisGetNoData    = "Redis returned no data for key %s"
	ErrDevRedisSetData      = "Redis failed to set key"
	ErrDevRedisDeleteData   = "Redis failed to delete key"

	ErrDevMinioFailedToCreateObject = "Minio failed to store object in bucket %s"
	ErrDevMinioFailedToPresignURL   = "Minio failed to presign URL for bucket %s"

	ErrDevRabbitMQFailedToPublish = "RabbitMQ failed to publish to queue %s"
	ErrDevRabbitMQFailedToConsume = "RabbitMQ failed to start consumer on queue %s"
)
