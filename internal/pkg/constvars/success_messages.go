package constvars

const (
	RegisterSuccessMessage = "Successfully registered"
	LoginSuccessMessage    = "Successfully logged in"
	LogoutSuccessMessage   = "Successfully logged out"

	GetProfileSuccessMessage = "Successfully retrieved profile"
	UpdateUserSuccessMessage = "Successfully updated profile"
	DeleteUserSuccessMessage = "Successfully deactivated account"

	CreateMuscleSuccessMessage = "Successfully created muscle"
	GetMuscleSuccessMessage    = "Successfully retrieved muscle"
	ListMusclesSuccessMessage  = "Successfully retrieved muscles"
	UpdateMuscleSuccessMessage = "Successfully updated muscle"
	DeleteMuscleSuccessMessage = "Successfully deleted muscle"

	CreateExerciseSuccessMessage = "Successfully created exercise"
	GetExerciseSuccessMessage    = "Successfully retrieved exercise"
	ListExercisesSuccessMessage  = "Successfully retrieved exercises"
	UpdateExerciseSuccessMessage = "Successfully updated exercise"
	DeleteExerciseSuccessMessage = "Successfully deleted exercise"

	CreateWorkoutSuccessMessage = "Successfully created workout"
	GetWorkoutSuccessMessage    = "Successfully retrieved workout"
	ListWorkoutsSuccessMessage  = "Successfully retrieved workouts"
	UpdateWorkoutSuccessMessage = "Successfully updated workout"
	DeleteWorkoutSuccessMessage = "Successfully deleted workout"

	CreateMoodSuccessMessage = "Successfully logged mood"
	GetMoodSuccessMessage    = "Successfully retrieved mood entry"
	ListMoodsSuccessMessage  = "Successfully retrieved mood entries"
	UpdateMoodSuccessMessage = "Successfully updated mood entry"
	DeleteMoodSuccessMessage = "Successfully deleted mood entry"

	CreateEmergencyContactSuccessMessage = "Successfully added emergency contact"
	GetEmergencyContactSuccessMessage    = "Successfully retrieved emergency contact"
	ListEmergencyContactsSuccessMessage  = "Successfully retrieved emergency contacts"
	UpdateEmergencyContactSuccessMessage = "Successfully updated emergency contact"
	DeleteEmergencyContactSuccessMessage = "Successfully deleted emergency contact"

	CreateHelplineSuccessMessage = "Successfully created helpline"
	GetHelplineSuccessMessage    = "Successfully retrieved helpline"
	ListHelplinesSuccessMessage  = "Successfully retrieved helplines"
	UpdateHelplineSuccessMessage = "Successfully updated helpline"
	DeleteHelplineSuccessMessage = "Successfully deleted helpline"

	SendPenpalRequestSuccessMessage    = "Successfully sent friend request"
	ListPenpalRequestsSuccessMessage   = "Successfully retrieved friend requests"
	RespondPenpalRequestSuccessMessage = "Successfully responded to friend request"
	ListPenpalFriendsSuccessMessage    = "Successfully retrieved pen pals"
	RemovePenpalFriendSuccessMessage   = "Successfully removed pen pal"
	SendPenpalMessageSuccessMessage    = "Successfully sent message"
	ListPenpalMessagesSuccessMessage   = "Successfully retrieved conversation"
)
