package database

import (
	"log"

	"gorm.io/gorm"

	"github.com/careerinn/careerinn/app/models"
	"github.com/careerinn/careerinn/internal/pkg/env"
)

// SeedCatalog fills empty catalog tables with the starter data set. Each
// table is seeded independently so an admin can clear and re-seed one
// catalog without touching the others.
func SeedCatalog(db *gorm.DB) error {
	if err := seedColleges(db); err != nil {
		return err
	}
	if err := seedMentors(db); err != nil {
		return err
	}
	if err := seedJobs(db); err != nil {
		return err
	}
	if err := seedMockInterviews(db); err != nil {
		return err
	}
	if err := seedPrevPapers(db); err != nil {
		return err
	}
	return seedAdminUser(db)
}

func seedColleges(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.College{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	colleges := []models.College{
		{Name: "IHM Hyderabad (IHMH)", Location: "DD Colony, Hyderabad", Fees: 320000, Course: "BSc in Hospitality & Hotel Administration", Rating: 4.6, Domain: models.DOMAIN_HOSPITALITY},
		{Name: "NITHM Hyderabad", Location: "Gachibowli, Hyderabad", Fees: 280000, Course: "BBA in Tourism & Hospitality", Rating: 4.3, Domain: models.DOMAIN_HOSPITALITY},
		{Name: "IIHM Hyderabad", Location: "Somajiguda, Hyderabad", Fees: 350000, Course: "BA in Hospitality Management", Rating: 4.5, Domain: models.DOMAIN_HOSPITALITY},
		{Name: "JNTU Hyderabad", Location: "Kukatpally, Hyderabad", Fees: 60000, Course: "B.Tech - CSE", Rating: 4.0, Domain: models.DOMAIN_BTECH},
		{Name: "Osmania University", Location: "Hyderabad", Fees: 50000, Course: "B.Tech - ECE", Rating: 3.8, Domain: models.DOMAIN_BTECH},
		{Name: "VNR VJIET", Location: "Ghatkesar, Hyderabad", Fees: 90000, Course: "B.Tech - CSE", Rating: 4.1, Domain: models.DOMAIN_BTECH},
		{Name: "Institute of Aeronautical Engineering", Location: "Hyderabad", Fees: 120000, Course: "B.Tech - Mechanical", Rating: 3.9, Domain: models.DOMAIN_BTECH},
	}
	return db.Create(&colleges).Error
}

func seedMentors(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Mentor{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	mentors := []models.Mentor{
		{Name: "Priya Sharma", Experience: "10+ years hospitality operations", Speciality: "Hotel Ops / Front Office", Domain: models.DOMAIN_HOSPITALITY},
		{Name: "Ravi Kumar", Experience: "8+ years software engineering hiring", Speciality: "CSE recruiter & interview coach", Domain: models.DOMAIN_BTECH},
		{Name: "Anita Das", Experience: "Ex-Resort F&B head", Speciality: "Culinary / F&B", Domain: models.DOMAIN_HOSPITALITY},
	}
	return db.Create(&mentors).Error
}

func seedJobs(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	jobs := []models.Job{
		{Title: "Management Trainee - Hotel Ops", Company: "Taj / IHCL", Location: "Pan India", Salary: "₹4.5–5.5 LPA", Domain: models.DOMAIN_HOSPITALITY},
		{Title: "F&B Associate", Company: "Marriott Hotels", Location: "Hyderabad", Salary: "₹3–4 LPA", Domain: models.DOMAIN_HOSPITALITY},
		{Title: "Software Engineer - Intern", Company: "Startup X", Location: "Hyderabad", Salary: "Stipend", Domain: models.DOMAIN_BTECH},
		{Title: "Embedded Systems Intern", Company: "Hardware Co", Location: "Bengaluru", Salary: "Stipend", Domain: models.DOMAIN_BTECH},
	}
	return db.Create(&jobs).Error
}

func seedMockInterviews(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MockInterview{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	interviews := []models.MockInterview{
		{
			Title:  "Front Office Mock - Common Questions",
			Notes:  "Roleplay: guest complains about late check-in. Practice answers for grooming & upsell.",
			Link:   "https://www.example.com/mock-frontoffice",
			Domain: models.DOMAIN_HOSPITALITY,
		},
		{
			Title:  "CSE Intern Interview - Sample",
			Notes:  "Data structures & resume walk-through.",
			Link:   "https://www.example.com/mock-cse",
			Domain: models.DOMAIN_BTECH,
		},
	}
	return db.Create(&interviews).Error
}

func seedPrevPapers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.PrevPaper{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	papers := []models.PrevPaper{
		{Title: "NCHM JEE - PYQ Collection (Aglasem)", Year: "all", Link: "https://admission.aglasem.com/nchmct-jee-question-paper/", Domain: models.DOMAIN_HOSPITALITY},
		{Title: "GATE Papers (Archive)", Year: "all", Link: "https://gate.iitm.ac.in/", Domain: models.DOMAIN_BTECH},
	}
	return db.Create(&papers).Error
}

// seedAdminUser creates the bootstrap admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are configured and no account with that email exists yet.
func seedAdminUser(db *gorm.DB) error {
	email := env.GetEnv("ADMIN_EMAIL", "")
	password := env.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", models.NormalizeEmail(email)).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin, err := models.CreateUser(env.GetEnv("ADMIN_NAME", "Administrator"), email, password)
	if err != nil {
		return err
	}
	admin.Role = models.ROLE_ADMIN
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	log.Printf("seeded admin account %s", admin.Email)
	return nil
}
