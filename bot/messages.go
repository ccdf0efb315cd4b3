package bot

const (
	msgHelp = "Try `/prognosis 30` to see arrival times for every station " +
		"of route 30. Other commands: /feedback, /about."
	msgAbout = "eta-digest renders live arrival predictions for public " +
		"transit routes. Questions or suggestions: /feedback."
	msgChooseRoute      = "Choose a route:"
	msgUnsupportedRoute = "Sorry, I have no information for that route."
	msgFeedback         = "Write your suggestions or questions here and send " +
		"the message. Changed your mind? /cancel"
	msgFeedbackThanks    = "Thank you! We will look at it shortly."
	msgFeedbackCancelled = "Maybe another time, then."
	msgReplyHint         = "Write your reply here. Changed your mind? /cancel"
)
