package command

var topHelp = []string{
	"create PROJECT_NAME: creates a new project",
	"list: lists all projects",
	"manage PROJECT_INDEX: manages the project at the given index",
	"delete PROJECT_INDEX: deletes the project at the given index",
	"help: shows this list",
	"bye: exits ArchDuke",
}

var projectHelp = []string{
	"add member -n NAME [-i PHONE] [-e EMAIL] [-r ROLE]",
	"edit member INDEX [-n NAME] [-i PHONE] [-e EMAIL] [-r ROLE]",
	"role INDEX -n ROLE",
	"delete member INDEX",
	"view members",
	"view credits",
	"add task -n NAME -p PRIORITY [-d dd/MM/yyyy] [-c CREDIT] [-s STATE] [-r REQUIREMENT]...",
	"edit task INDEX [-n NAME] [-p PRIORITY] [-d dd/MM/yyyy] [-c CREDIT] [-s STATE]",
	"delete task INDEX",
	"view tasks [-name | -date | -priority | -credits | -state STATE | -who NAME]",
	"view task requirements INDEX",
	"edit task requirements INDEX [-rm REQUIREMENT_INDEXES] [-r NEW_REQUIREMENT]...",
	"assign task -i TASK_INDEXES [-to MEMBER_INDEXES] [-rm MEMBER_INDEXES]",
	"view assignments -m MEMBER_INDEXES | all",
	"view assignments -t TASK_INDEXES | all",
	"add reminder -n NAME [-r REMARK] [-d dd/MM/yyyy] [-l CATEGORY]",
	"edit reminder INDEX [-n NAME] [-r REMARK] [-d dd/MM/yyyy] [-l CATEGORY]",
	"mark reminder INDEX / unmark reminder INDEX",
	"delete reminder INDEX",
	"view reminders",
	"view calendar",
	"exit: returns to the project list",
	"bye: exits ArchDuke",
	"Use -- as a value in edit commands to leave a field unchanged.",
}
