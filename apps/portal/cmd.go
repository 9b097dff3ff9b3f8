package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"syscall"

	"golang.org/x/term"

	"github.com/trezcool/darasa/core/news"
	"github.com/trezcool/darasa/core/session"
	"github.com/trezcool/darasa/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp           = errors.New("help provided")
	errUnknownPartner = errors.New("no chat partner with that username")
)

type commandLine struct {
	sess *session.Session
	out  io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  users|students|results|attendance -email EMAIL [-search Q] [-page N] - browse a roster (admin)")
	fmt.Fprintln(cli.out, "  children -email EMAIL [-student ID]                                  - view your children (parent)")
	fmt.Fprintln(cli.out, "  payments -email EMAIL                                                - view your payment history (parent)")
	fmt.Fprintln(cli.out, "  news -email EMAIL [-title T -content C -category CAT]                - read or post news")
	fmt.Fprintln(cli.out, "  chat -email EMAIL -with USERNAME [-send MSG]                         - open a conversation")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	cmd := flag.NewFlagSet(args[1], flag.ExitOnError)
	email := cmd.String("email", "", "Your account email. The password will be prompted next.")
	search := cmd.String("search", "", "Search term for the list view.")
	page := cmd.Int("page", 1, "Page number for the list view.")
	studentID := cmd.Int("student", 0, "Student id to inspect.")
	with := cmd.String("with", "", "Username of the chat partner.")
	send := cmd.String("send", "", "Message content to send.")
	title := cmd.String("title", "", "News title.")
	content := cmd.String("content", "", "News content.")
	category := cmd.String("category", "", "News category.")

	switch args[1] {
	case "users", "students", "results", "attendance", "children", "payments", "news", "chat":
		if err := cmd.Parse(args[2:]); err != nil {
			return err
		}
	default:
		cli.printUsage()
		return errHelp
	}
	if *email == "" {
		cmd.Usage()
		return errHelp
	}
	if err := cli.login(*email); err != nil {
		return err
	}

	switch args[1] {
	case "users":
		return cli.browseUsers(*search, *page)
	case "students":
		return cli.browseStudents(*search, *page)
	case "results":
		return cli.browseResults(*search, *page)
	case "attendance":
		return cli.browseAttendance(*search, *page)
	case "children":
		return cli.children(*studentID)
	case "payments":
		return cli.payments()
	case "news":
		return cli.news(*title, *content, *category)
	default: // chat
		return cli.chat(*with, *send)
	}
}

func (cli *commandLine) login(email string) error {
	fmt.Fprint(cli.out, "Enter password:")
	pwd, err := readPasswordFunc(syscall.Stdin)
	fmt.Fprintln(cli.out)
	if err != nil {
		return err
	}
	usr, err := cli.sess.Login(email, string(pwd))
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Logged in as %s (%s)\n\n", usr.Username, usr.Role)
	return nil
}

func (cli *commandLine) browseUsers(search string, page int) error {
	admin := cli.sess.Admin
	if err := admin.LoadUsers(); err != nil {
		return err
	}
	admin.Users.Search.Set(search)
	admin.Users.SetPage(page)
	for _, u := range admin.Users.PageItems() {
		fmt.Fprintf(cli.out, "%4d  %-20s %-30s %s\n", u.ID, u.Username, u.Email, u.Role)
	}
	fmt.Fprintf(cli.out, "page %d of %d\n", admin.Users.Page(), admin.Users.PageCount())
	return nil
}

func (cli *commandLine) browseStudents(search string, page int) error {
	admin := cli.sess.Admin
	if err := admin.LoadUsers(); err != nil { // parent names
		return err
	}
	if err := admin.LoadStudents(); err != nil {
		return err
	}
	admin.Students.Search.Set(search)
	admin.Students.SetPage(page)
	for _, st := range admin.Students.PageItems() {
		fmt.Fprintf(cli.out, "%4d  %-10s %-20s parent=%d\n", st.ID, st.StudentID, st.DisplayName(), st.ParentUserID)
	}
	fmt.Fprintf(cli.out, "page %d of %d\n", admin.Students.Page(), admin.Students.PageCount())
	return nil
}

func (cli *commandLine) browseResults(search string, page int) error {
	admin := cli.sess.Admin
	if err := admin.LoadStudents(); err != nil {
		return err
	}
	admin.Results.Search.Set(search)
	admin.Results.SetPage(page)
	for _, res := range admin.Results.PageItems() {
		fmt.Fprintf(cli.out, "%4d  student=%d %-15s %-3s %.1f %s\n", res.ID, res.StudentID, res.Subject, res.Grade, res.Score, res.Date)
	}
	fmt.Fprintf(cli.out, "page %d of %d\n", admin.Results.Page(), admin.Results.PageCount())
	return nil
}

func (cli *commandLine) browseAttendance(search string, page int) error {
	admin := cli.sess.Admin
	if err := admin.LoadStudents(); err != nil {
		return err
	}
	admin.Attendance.Search.Set(search)
	admin.Attendance.SetPage(page)
	for _, att := range admin.Attendance.PageItems() {
		fmt.Fprintf(cli.out, "%4d  student=%d %-10s %-10s %s\n", att.ID, att.StudentID, att.Date, att.Status, att.Reason)
	}
	fmt.Fprintf(cli.out, "page %d of %d\n", admin.Attendance.Page(), admin.Attendance.PageCount())
	return nil
}

func (cli *commandLine) children(studentID int) error {
	parent := cli.sess.Parent
	if err := parent.LoadStudents(); err != nil {
		return err
	}
	for _, st := range cli.sess.Store.Students.Get() {
		fmt.Fprintf(cli.out, "%4d  %-10s %s\n", st.ID, st.StudentID, st.DisplayName())
	}
	if studentID == 0 {
		return nil
	}
	if err := parent.SelectStudent(studentID); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "\nResults for %s:\n", parent.StudentName(studentID))
	for _, res := range parent.StudentResults.Get() {
		fmt.Fprintf(cli.out, "  %-15s %-3s %.1f %s\n", res.Subject, res.Grade, res.Score, res.Date)
	}
	fmt.Fprintln(cli.out, "Attendance:")
	for _, att := range parent.StudentAttendance.Get() {
		fmt.Fprintf(cli.out, "  %-10s %-10s %s\n", att.Date, att.Status, att.Reason)
	}
	return nil
}

func (cli *commandLine) payments() error {
	parent := cli.sess.Parent
	if err := parent.LoadPayments(); err != nil {
		return err
	}
	for _, pmt := range cli.sess.Store.Payments.Get() {
		fmt.Fprintf(cli.out, "%4d  student=%d %8.2f %-10s %s %s\n",
			pmt.ID, pmt.StudentID, pmt.Amount, pmt.Status, pmt.PaymentDate.Format("2006-01-02"), pmt.Description)
	}
	return nil
}

func (cli *commandLine) news(title, content, category string) error {
	if title != "" || content != "" || category != "" {
		return cli.sess.Admin.PostNews(news.NewNews{Title: title, Content: content, Category: category})
	}
	if err := cli.sess.LoadNews(); err != nil {
		return err
	}
	for _, item := range cli.sess.Store.News.Get() {
		fmt.Fprintf(cli.out, "[%s] %s by %s (%s)\n", item.Category, item.Title, item.AuthorUsername, item.PublishedDate.Format("2006-01-02"))
		fmt.Fprintf(cli.out, "  %s\n", item.Content)
	}
	return nil
}

func (cli *commandLine) chat(with, send string) error {
	if with == "" {
		cli.printUsage()
		return errHelp
	}
	panel := cli.sess.Chat
	panel.Toggle()

	panel.Partners.Search.Set(with)
	var partner *user.User
	for _, u := range panel.Partners.Filtered() {
		if u.Username == with {
			u := u
			partner = &u
			break
		}
	}
	if partner == nil {
		return errUnknownPartner
	}

	conv, err := panel.OpenWith(*partner)
	if err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "Conversation with %s\n", panel.Resolver.PartnerName())
	for _, msg := range conv.Messages {
		fmt.Fprintf(cli.out, "  %s %s: %s\n", msg.Timestamp.Format("15:04"), msg.SenderUsername, msg.Content)
	}

	if send != "" {
		panel.Resolver.Compose.Set(send)
		msg, err := panel.Send()
		if err != nil {
			return err
		}
		fmt.Fprintf(cli.out, "  %s %s: %s\n", msg.Timestamp.Format("15:04"), msg.SenderUsername, msg.Content)
	}
	return nil
}
