package handlers

import (
	"errors"

	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/internal/models"
	"github.com/PalakSingla-tech/AI-Based-Event-Planner-and-Scheduler/pkg/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type RegisterInput struct {
	FullName        string `form:"fullName" binding:"required"`
	Email           string `form:"email" binding:"required,email"`
	Password        string `form:"password" binding:"required,min=6"`
	ConfirmPassword string `form:"confirmPassword" binding:"required"`
	Role            string `form:"role" binding:"required"`
}

type LoginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
}

// Register creates a new account. The password and its confirmation must
// match before anything is persisted.
func Register(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input RegisterInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		if input.Password != input.ConfirmPassword {
			c.JSON(400, gin.H{"error": "Password did not match"})
			return
		}

		user := models.User{
			FullName: input.FullName,
			Email:    input.Email,
			Role:     input.Role,
		}
		if err := user.HashPassword(input.Password); err != nil {
			c.JSON(500, gin.H{"error": "Failed to hash password"})
			return
		}

		if result := db.Create(&user); result.Error != nil {
			c.JSON(400, gin.H{"error": "Failed to create user: " + result.Error.Error()})
			return
		}

		c.JSON(200, user)
	}
}

// Login verifies credentials and returns the account with a session token.
func Login(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input LoginInput
		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if result := db.Where("email = ?", input.Email).First(&user); result.Error != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		if err := user.CheckPassword(input.Password); err != nil {
			c.JSON(401, gin.H{"error": "Invalid credentials"})
			return
		}

		token, err := utils.GenerateToken(&user, jwtSecret)
		if err != nil {
			c.JSON(500, gin.H{"error": "Failed to generate token"})
			return
		}

		c.JSON(200, gin.H{
			"token": token,
			"user":  user,
		})
	}
}

// GetProfile fetches an account by email. A missing account yields an
// empty 200 body, not an error.
func GetProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")

		var user models.User
		if err := db.Where("email = ?", email).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(200, nil)
				return
			}
			c.JSON(500, gin.H{"error": "Failed to fetch profile"})
			return
		}

		c.JSON(200, user)
	}
}

// UpdateProfile updates the non-blank fields of an account.
func UpdateProfile(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input struct {
			FullName string `form:"fullName"`
			Email    string `form:"email" binding:"required,email"`
			Phone    string `form:"phone"`
			City     string `form:"city"`
		}

		if err := c.ShouldBind(&input); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := db.Where("email = ?", input.Email).First(&user).Error; err != nil {
			c.JSON(404, gin.H{"error": "User not found"})
			return
		}

		if input.FullName != "" {
			user.FullName = input.FullName
		}
		if input.Phone != "" {
			user.Phone = input.Phone
		}
		if input.City != "" {
			user.City = input.City
		}

		if err := db.Save(&user).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(200, user)
	}
}

// GetAllUsers lists every account, for the manage-users admin page.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.Find(&users).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(200, users)
	}
}

// DeleteUser removes an account by id.
func DeleteUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Delete(&models.User{}, c.Param("id")).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to delete user"})
			return
		}
		c.Status(200)
	}
}
