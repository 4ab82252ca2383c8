package handler

// Form request types bound from browser posts. Validation is presence-only;
// everything else is left to the store (username uniqueness) or accepted
// as-is.

type registerForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type loginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

type sendMessageForm struct {
	Sender   string `form:"sender"   validate:"required"`
	Receiver string `form:"receiver" validate:"required"`
	Message  string `form:"message"  validate:"required"`
}

type verifyForm struct {
	Username string `form:"username" validate:"required"`
	Action   string `form:"action"`
}
