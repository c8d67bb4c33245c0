package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/careerinn/careerinn/app/repository"
)

// Global admin controller instance
var adminController *AdminController

// InitializeAdminController initializes the global admin controller with repositories
func InitializeAdminController() {
	repos := repository.GetGlobalRepositories()
	adminController = NewAdminController(repos)
}

// GetAdminController returns the global admin controller instance
func GetAdminController() *AdminController {
	if adminController == nil {
		InitializeAdminController()
	}
	return adminController
}

// Adapter functions to maintain compatibility with existing router

func HandleAdminDashboard(c *fiber.Ctx) error {
	return GetAdminController().HandleDashboard(c)
}

func HandleAdminUsers(c *fiber.Ctx) error {
	return GetAdminController().HandleUsers(c)
}

func HandleAdminColleges(c *fiber.Ctx) error {
	return GetAdminController().HandleColleges(c)
}

func HandleAdminCollegeStore(c *fiber.Ctx) error {
	return GetAdminController().HandleCollegeStore(c)
}

func HandleAdminCollegeUpdate(c *fiber.Ctx) error {
	return GetAdminController().HandleCollegeUpdate(c)
}

func HandleAdminCollegeDelete(c *fiber.Ctx) error {
	return GetAdminController().HandleCollegeDelete(c)
}

func HandleAdminMentors(c *fiber.Ctx) error {
	return GetAdminController().HandleMentors(c)
}

func HandleAdminMentorStore(c *fiber.Ctx) error {
	return GetAdminController().HandleMentorStore(c)
}

func HandleAdminMentorUpdate(c *fiber.Ctx) error {
	return GetAdminController().HandleMentorUpdate(c)
}

func HandleAdminMentorDelete(c *fiber.Ctx) error {
	return GetAdminController().HandleMentorDelete(c)
}

func HandleAdminJobs(c *fiber.Ctx) error {
	return GetAdminController().HandleJobs(c)
}

func HandleAdminJobStore(c *fiber.Ctx) error {
	return GetAdminController().HandleJobStore(c)
}

func HandleAdminJobUpdate(c *fiber.Ctx) error {
	return GetAdminController().HandleJobUpdate(c)
}

func HandleAdminJobDelete(c *fiber.Ctx) error {
	return GetAdminController().HandleJobDelete(c)
}

func HandleAdminChatSessions(c *fiber.Ctx) error {
	return GetAdminController().HandleChatSessions(c)
}

func HandleAdminChatSessionsClear(c *fiber.Ctx) error {
	return GetAdminController().HandleChatSessionsClear(c)
}
