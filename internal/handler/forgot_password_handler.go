package handler

import (
	"strconv"

	"movieflix/internal/models"
	"movieflix/internal/service"
	"movieflix/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Forgot password responses
const (
	msgEmailSent       = "Email sent for verification!"
	msgPasswordChanged = "Password has been changed successfully!"
)

// ForgotPasswordHandler handles the three step password reset.
type ForgotPasswordHandler struct {
	service  service.PasswordResetServicer
	validate *validator.Validate
}

// NewForgotPasswordHandler creates a new ForgotPasswordHandler.
func NewForgotPasswordHandler(service service.PasswordResetServicer) *ForgotPasswordHandler {
	return &ForgotPasswordHandler{service: service, validate: validator.New()}
}

// VerifyEmail godoc
// @Summary      Request a password reset code
// @Description  Mail a one-time code to the account with this email
// @Tags         forgot-password
// @Produce      json
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  response.Response{data=models.MessageResponse}
// @Failure      400    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Failure      502    {object}  response.Response
// @Router       /forgot-password/verify-email/{email} [post]
func (h *ForgotPasswordHandler) VerifyEmail(c *gin.Context) {
	email, ok := h.emailParam(c)
	if !ok {
		return
	}

	if err := h.service.VerifyEmail(c.Request.Context(), email); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, models.MessageResponse{Message: msgEmailSent})
}

// VerifyOtp godoc
// @Summary      Verify a password reset code
// @Description  Exchange a valid code for a short-lived reset token
// @Tags         forgot-password
// @Produce      json
// @Param        otp    path      int     true  "One-time code"
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  response.Response{data=models.ResetTokenResponse}
// @Failure      400    {object}  response.Response
// @Failure      401    {object}  response.Response
// @Failure      404    {object}  response.Response
// @Failure      417    {object}  response.Response
// @Failure      429    {object}  response.Response
// @Router       /forgot-password/verify-otp/{otp}/{email} [post]
func (h *ForgotPasswordHandler) VerifyOtp(c *gin.Context) {
	otp, err := strconv.Atoi(c.Param("otp"))
	if err != nil {
		response.BadRequest(c, "invalid otp format")
		return
	}

	email, ok := h.emailParam(c)
	if !ok {
		return
	}

	result, err := h.service.VerifyOtp(c.Request.Context(), otp, email)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, result)
}

// ChangePassword godoc
// @Summary      Change password
// @Description  Set a new password using the reset token from OTP verification
// @Tags         forgot-password
// @Accept       json
// @Produce      json
// @Param        email     path      string                        true  "Account email"
// @Param        otpToken  path      string                        true  "Reset token"
// @Param        request   body      models.ChangePasswordRequest  true  "New password"
// @Success      200       {object}  response.Response{data=models.MessageResponse}
// @Failure      400       {object}  response.Response
// @Failure      401       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      417       {object}  response.Response
// @Router       /forgot-password/change-password/{email}/{otpToken} [post]
func (h *ForgotPasswordHandler) ChangePassword(c *gin.Context) {
	email, ok := h.emailParam(c)
	if !ok {
		return
	}

	var req models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), email, c.Param("otpToken"), &req); err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, models.MessageResponse{Message: msgPasswordChanged})
}

func (h *ForgotPasswordHandler) emailParam(c *gin.Context) (string, bool) {
	email := c.Param("email")
	if err := h.validate.Var(email, "required,email"); err != nil {
		response.BadRequest(c, "invalid email format")
		return "", false
	}
	return email, true
}
