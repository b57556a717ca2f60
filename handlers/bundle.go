package handlers

import userRepo "mentorhub/database/repository/user"

// HandlerBundle aggregates every handler plus the repositories middleware
// needs, so route registration takes a single argument.
type HandlerBundle struct {
	Auth         *AuthHandler
	Mentor       *MentorHandler
	Availability *AvailabilityHandler
	Student      *StudentHandler
	Specialty    *SpecialtyHandler
	Review       *ReviewHandler
	Admin        *AdminHandler
	Upload       *UploadHandler

	Users userRepo.UserRepository
}
