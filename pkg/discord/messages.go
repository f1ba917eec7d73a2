package discord

// Custom ids the bot registers on its buttons and modals. Inbound
// interactions are classified by these.
const (
	CustomIDEmailButton   = "email"
	CustomIDReentryButton = "email_reenter"
	CustomIDCodeButton    = "code"
	CustomIDEmailModal    = "email_modal"
	CustomIDCodeModal     = "code_modal"

	fieldEmail = "email_field"
	fieldCode  = "code_field"
)

// User-facing strings.
const (
	msgAlreadyVerified    = "Error: You are already verified!"
	msgReentryOffer       = "You've already entered your email. Would you like to reenter your email and get a new code?"
	msgInvalidEmail       = "You did not provide a valid OSU email! Your email must have the format `name.#@osu.edu` or `name.#@buckeyemail.osu.edu`"
	msgCodeSent           = "Please check your email for your verification code. Then press the gray button above to enter your code."
	msgPressEmailFirst    = "Please press the other button to enter your email first."
	msgCodeNotFound       = "Error: Verification code not found, please enter your email again"
	msgCodeMismatch       = "Error: Incorrect verification code entered"
	msgVerified           = "Your account has successfully been verified! Enjoy the server!"
	msgUnknownInteraction = "Error: Unknown interaction"
	msgInternalError      = "There was an error while executing this command!"
)

// EmailModal is the response that opens the email entry form.
func EmailModal() InteractionResponse {
	return InteractionResponse{
		Type: ResponseModal,
		Data: &ResponseData{
			Title:    "Enter Your Email Address",
			CustomID: CustomIDEmailModal,
			Components: []ActionRow{{
				Type: componentTypeActionRow,
				Components: []Component{{
					Type:        componentTypeTextInput,
					CustomID:    fieldEmail,
					Label:       "Email",
					Style:       textInputStyleShort,
					MinLength:   11,
					Required:    true,
					Placeholder: "brutus.1@osu.edu",
				}},
			}},
		},
	}
}

// CodeModal is the response that opens the code entry form.
func CodeModal() InteractionResponse {
	return InteractionResponse{
		Type: ResponseModal,
		Data: &ResponseData{
			Title:    "Enter Your Verification Code",
			CustomID: CustomIDCodeModal,
			Components: []ActionRow{{
				Type: componentTypeActionRow,
				Components: []Component{{
					Type:        componentTypeTextInput,
					CustomID:    fieldCode,
					Label:       "Code",
					Style:       textInputStyleShort,
					MinLength:   6,
					MaxLength:   6,
					Required:    true,
					Placeholder: "Enter the 6 digit verification code sent to your email",
				}},
			}},
		},
	}
}

// reentryComponents is the button row attached to the re-entry offer.
func reentryComponents() []ActionRow {
	return []ActionRow{{
		Type: componentTypeActionRow,
		Components: []Component{{
			Type:     componentTypeButton,
			Label:    "Reenter Email",
			Style:    buttonStyleSuccess,
			CustomID: CustomIDReentryButton,
		}},
	}}
}

// ephemeralMessage wraps content in an ephemeral channel-message response.
func ephemeralMessage(content string) InteractionResponse {
	return InteractionResponse{
		Type: ResponseChannelMessage,
		Data: &ResponseData{
			Content: content,
			Flags:   FlagEphemeral,
		},
	}
}

// InstructionsMessage is the how-to-verify message posted to the
// verification channel: the steps embed plus the two entry buttons.
func InstructionsMessage(helpChannelID string) Message {
	return Message{
		Embeds: []Embed{{
			Title:       "Welcome to the CSE Discord!",
			Description: "Please follow the steps below to gain verify your OSU email!",
			Color:       16711680,
			Fields: []EmbedField{
				{
					Name:  "Step 1",
					Value: "Click the green button labeled `Enter Email` and enter your OSU email. If your email goes through, continue to step 2.",
				},
				{
					Name:  "Step 2",
					Value: "Once you've received an email, click the gray button labeled `Enter Verification Code` and enter the 6 digit verification code included in the email.",
				},
				{
					Name:  "That's it!",
					Value: "Once you verify, you should see all the channels in the server. Enjoy! If you need help verifying, send a message in <#" + helpChannelID + ">.",
				},
			},
		}},
		Components: []ActionRow{{
			Type: componentTypeActionRow,
			Components: []Component{
				{
					Type:     componentTypeButton,
					Label:    "Enter Email",
					Style:    buttonStyleSuccess,
					CustomID: CustomIDEmailButton,
				},
				{
					Type:     componentTypeButton,
					Label:    "Enter Verification Code",
					Style:    buttonStyleSecondary,
					CustomID: CustomIDCodeButton,
				},
			},
		}},
	}
}
