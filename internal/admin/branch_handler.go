package admin

import (
	"strings"

	"distribuidora-backend/internal/database"
	"distribuidora-backend/internal/models"
	"distribuidora-backend/internal/stock"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Colaborador de estoque, definido no main junto com o dos handlers de
// inventário. A criação de filial passa por ele para a matriz ficar sabendo.
var backend stock.Backend

func UseBackend(b stock.Backend) {
	backend = b
}

type BranchResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	City        string `json:"city"`
	Region      string `json:"region"`
	Active      bool   `json:"active"`
	CreatedAt   string `json:"created_at"`
}

type CreateBranchRequest struct {
	Name   string `json:"name"` // Opcional; vazio usa Cidade-UF
	City   string `json:"city"`
	Region string `json:"region"`
}

type UpdateBranchRequest struct {
	Name   *string `json:"name"`
	City   *string `json:"city"`
	Region *string `json:"region"`
	Active *bool   `json:"active"`
}

type CreateBranchAdminRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type BranchAdminResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	BranchID  *string `json:"branch_id"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

func branchResponse(b models.Branch) BranchResponse {
	return BranchResponse{
		ID:          b.ID,
		Name:        b.Name,
		DisplayName: b.DisplayName(),
		City:        b.City,
		Region:      b.Region,
		Active:      b.Active,
		CreatedAt:   b.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// ----------------------------------------
// CRUD DE FILIAIS
// ----------------------------------------

func CreateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Name = strings.TrimSpace(body.Name)
		body.City = strings.TrimSpace(body.City)
		body.Region = strings.ToUpper(strings.TrimSpace(body.Region))

		if body.City == "" && body.Region != "" {
			body.City = stock.DefaultCityForRegion(body.Region)
		}
		if body.Name == "" && body.City == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Informe o nome ou a cidade da filial")
		}

		created, err := backend.CreateBranch(body.Name, body.City, body.Region)
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Filial não pôde ser criada no backend de estoque")
		}

		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

func ListBranchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branches, err := backend.ListBranches()
		if err != nil {
			return fiber.NewError(fiber.StatusBadGateway, "Filiais não puderam ser listadas")
		}

		return c.JSON(branches)
	}
}

func GetBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Filial não encontrada")
		}

		return c.JSON(branchResponse(branch))
	}
}

func UpdateBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Filial não encontrada")
		}

		var body UpdateBranchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		if body.Name != nil {
			branch.Name = strings.TrimSpace(*body.Name)
		}
		if body.City != nil {
			branch.City = strings.TrimSpace(*body.City)
		}
		if body.Region != nil {
			branch.Region = strings.ToUpper(strings.TrimSpace(*body.Region))
		}
		if body.Active != nil {
			branch.Active = *body.Active
		}

		if err := database.DB.Save(&branch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Filial não pôde ser atualizada")
		}

		return c.JSON(branchResponse(branch))
	}
}

func DeleteBranchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		if err := database.DB.Delete(&models.Branch{}, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Filial não pôde ser excluída")
		}

		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ----------------------------------------
// ADMIN DE FILIAL
// ----------------------------------------

func CreateBranchAdminHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID := c.Params("id")

		var branch models.Branch
		if err := database.DB.First(&branch, "id = ?", branchID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Filial não encontrada")
		}

		var body CreateBranchAdminRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Corpo da requisição inválido")
		}

		body.Email = strings.ToLower(strings.TrimSpace(body.Email))
		body.Name = strings.TrimSpace(body.Name)

		if body.Name == "" || body.Email == "" || body.Password == "" {
			return fiber.NewError(fiber.StatusBadRequest, "Nome, email e senha são obrigatórios")
		}

		var exist models.User
		if err := database.DB.Where("email = ?", body.Email).First(&exist).Error; err == nil {
			return fiber.NewError(fiber.StatusBadRequest, "Este email já está cadastrado")
		}

		hash, _ := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)

		user := models.User{
			Name:         body.Name,
			Email:        body.Email,
			PasswordHash: string(hash),
			Role:         models.RoleBranchAdmin,
			BranchID:     &branch.ID,
		}

		if err := database.DB.Create(&user).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Admin de filial não pôde ser criado")
		}

		// A senha em claro só aparece nesta resposta de criação
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"id":        user.ID,
			"name":      user.Name,
			"email":     user.Email,
			"role":      user.Role,
			"branch_id": user.BranchID,
			"password":  body.Password,
		})
	}
}

// GET /api/admin/branches/:id/admins
func ListBranchAdminsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		branchID := c.Params("id")

		var users []models.User
		if err := database.DB.
			Where("branch_id = ? AND role = ?", branchID, models.RoleBranchAdmin).
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Admins não puderam ser listados")
		}

		res := make([]BranchAdminResponse, 0, len(users))
		for _, u := range users {
			res = append(res, BranchAdminResponse{
				ID:        u.ID,
				Name:      u.Name,
				Email:     u.Email,
				Role:      string(u.Role),
				BranchID:  u.BranchID,
				CreatedAt: u.CreatedAt.Format("2006-01-02 15:04:05"),
				UpdatedAt: u.UpdatedAt.Format("2006-01-02 15:04:05"),
			})
		}

		return c.JSON(res)
	}
}
