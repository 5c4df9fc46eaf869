package shell

import (
	"gopkg.in/abiosoft/ishell.v2"

	"github.com/aspirantsclub/core/core/auth"
	"github.com/aspirantsclub/core/core/config"
	"github.com/aspirantsclub/core/core/user"
	"github.com/aspirantsclub/core/deps"
)

// Login walks the OTP flow and installs the verified identity for the
// rest of the session.
func Login(c *ishell.Context) {
	c.ShowPrompt(false)
	defer c.ShowPrompt(true)

	c.Print("mobile number: ")
	mobile := c.ReadLine()

	ctx, cancel := reqCtx()
	defer cancel()
	if err := auth.SendOtp(ctx, deps.Container, mobile); err != nil {
		c.Println(err)
		return
	}

	c.Print("OTP: ")
	otp := c.ReadLine()

	vctx, vcancel := reqCtx()
	defer vcancel()
	verified, err := auth.VerifyOtp(vctx, deps.Container, mobile, otp)
	if err != nil {
		c.Println(err)
		return
	}

	current.Lock()
	current.identity = config.Identity{UserID: verified.UserId, Name: verified.Name}
	current.Unlock()

	c.Printf("signed in as %s\n", verified.Name)
}

func Register(c *ishell.Context) {
	c.ShowPrompt(false)
	defer c.ShowPrompt(true)

	form := auth.RegisterForm{}
	c.Print("name: ")
	form.Name = c.ReadLine()
	c.Print("username: ")
	form.Username = c.ReadLine()
	c.Print("mobile: ")
	form.Mobile = c.ReadLine()
	c.Print("email: ")
	form.EmailId = c.ReadLine()

	ctx, cancel := reqCtx()
	defer cancel()

	created, err := auth.Register(ctx, deps.Container, form)
	if err != nil {
		c.Println(err)
		return
	}

	c.Printf("account created for %s, now `login` to verify your number\n", created.DisplayName())
}

func UsersCmd(c *ishell.Context) {
	ctx, cancel := reqCtx()
	defer cancel()

	list, err := user.FindList(ctx, deps.Container)
	if err != nil {
		c.Println("could not load users:", err)
		return
	}

	for _, u := range list {
		mentor := ""
		if u.VerifiedMentor() {
			mentor = " ✓"
		}
		c.Printf("%s  %s (@%s)%s\n", u.Id, u.DisplayName(), u.UserName, mentor)
	}
}
