package api

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"
)

const packageName = "roommates.v1"

// Fully-qualified service names.
const (
	AuthServiceName         = packageName + ".AuthService"
	RoomServiceName         = packageName + ".RoomService"
	ChoreServiceName        = packageName + ".ChoreService"
	LedgerServiceName       = packageName + ".LedgerService"
	NotificationServiceName = packageName + ".NotificationService"
)

// Procedure paths, in the form /<service>/<method>.
const (
	AuthServiceRegisterProcedure                     = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure                        = "/" + AuthServiceName + "/Login"
	AuthServiceGetCurrentPersonProcedure             = "/" + AuthServiceName + "/GetCurrentPerson"
	RoomServiceCreateRoomProcedure                   = "/" + RoomServiceName + "/CreateRoom"
	RoomServiceJoinRoomProcedure                     = "/" + RoomServiceName + "/JoinRoom"
	RoomServiceGetRoomProcedure                      = "/" + RoomServiceName + "/GetRoom"
	RoomServiceLeaveRoomProcedure                    = "/" + RoomServiceName + "/LeaveRoom"
	ChoreServiceCreateChoreProcedure                 = "/" + ChoreServiceName + "/CreateChore"
	ChoreServiceUpdateChoreProcedure                 = "/" + ChoreServiceName + "/UpdateChore"
	ChoreServiceDeleteChoreProcedure                 = "/" + ChoreServiceName + "/DeleteChore"
	ChoreServiceSetChoreCompletedProcedure           = "/" + ChoreServiceName + "/SetChoreCompleted"
	ChoreServiceListChoresProcedure                  = "/" + ChoreServiceName + "/ListChores"
	LedgerServiceOpenPeriodProcedure                 = "/" + LedgerServiceName + "/OpenPeriod"
	LedgerServiceClosePeriodProcedure                = "/" + LedgerServiceName + "/ClosePeriod"
	LedgerServiceListPeriodsProcedure                = "/" + LedgerServiceName + "/ListPeriods"
	LedgerServiceAddExpenseProcedure                 = "/" + LedgerServiceName + "/AddExpense"
	LedgerServiceRemoveExpenseProcedure              = "/" + LedgerServiceName + "/RemoveExpense"
	LedgerServiceListExpensesProcedure               = "/" + LedgerServiceName + "/ListExpenses"
	LedgerServiceGetBalancesProcedure                = "/" + LedgerServiceName + "/GetBalances"
	LedgerServiceListSharesProcedure                 = "/" + LedgerServiceName + "/ListShares"
	NotificationServiceSendNotificationProcedure     = "/" + NotificationServiceName + "/SendNotification"
	NotificationServiceListNotificationsProcedure    = "/" + NotificationServiceName + "/ListNotifications"
	NotificationServiceMarkNotificationReadProcedure = "/" + NotificationServiceName + "/MarkNotificationRead"
	NotificationServiceDeleteNotificationProcedure   = "/" + NotificationServiceName + "/DeleteNotification"
)

// AuthServiceHandler authenticates roommates and issues session tokens.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[RegisterRequest]) (*connect.Response[AuthResponse], error)
	Login(context.Context, *connect.Request[LoginRequest]) (*connect.Response[AuthResponse], error)
	GetCurrentPerson(context.Context, *connect.Request[GetCurrentPersonRequest]) (*connect.Response[GetCurrentPersonResponse], error)
}

// NewAuthServiceHandler builds an HTTP handler for svc and returns the path to
// mount it on.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceRegisterProcedure, connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(AuthServiceGetCurrentPersonProcedure, connect.NewUnaryHandler(AuthServiceGetCurrentPersonProcedure, svc.GetCurrentPerson, opts...))
	return "/" + AuthServiceName + "/", mux
}

// AuthServiceClient is a client for the AuthService.
type AuthServiceClient struct {
	register         *connect.Client[RegisterRequest, AuthResponse]
	login            *connect.Client[LoginRequest, AuthResponse]
	getCurrentPerson *connect.Client[GetCurrentPersonRequest, GetCurrentPersonResponse]
}

// NewAuthServiceClient constructs a client for the service at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &AuthServiceClient{
		register:         connect.NewClient[RegisterRequest, AuthResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:            connect.NewClient[LoginRequest, AuthResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		getCurrentPerson: connect.NewClient[GetCurrentPersonRequest, GetCurrentPersonResponse](httpClient, baseURL+AuthServiceGetCurrentPersonProcedure, opts...),
	}
}

func (c *AuthServiceClient) Register(ctx context.Context, req *connect.Request[RegisterRequest]) (*connect.Response[AuthResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *AuthServiceClient) Login(ctx context.Context, req *connect.Request[LoginRequest]) (*connect.Response[AuthResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *AuthServiceClient) GetCurrentPerson(ctx context.Context, req *connect.Request[GetCurrentPersonRequest]) (*connect.Response[GetCurrentPersonResponse], error) {
	return c.getCurrentPerson.CallUnary(ctx, req)
}

// RoomServiceHandler manages the caller's room and membership.
type RoomServiceHandler interface {
	CreateRoom(context.Context, *connect.Request[CreateRoomRequest]) (*connect.Response[RoomResponse], error)
	JoinRoom(context.Context, *connect.Request[JoinRoomRequest]) (*connect.Response[RoomResponse], error)
	GetRoom(context.Context, *connect.Request[GetRoomRequest]) (*connect.Response[RoomResponse], error)
	LeaveRoom(context.Context, *connect.Request[LeaveRoomRequest]) (*connect.Response[LeaveRoomResponse], error)
}

// NewRoomServiceHandler builds an HTTP handler for svc and returns the path to
// mount it on.
func NewRoomServiceHandler(svc RoomServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(RoomServiceCreateRoomProcedure, connect.NewUnaryHandler(RoomServiceCreateRoomProcedure, svc.CreateRoom, opts...))
	mux.Handle(RoomServiceJoinRoomProcedure, connect.NewUnaryHandler(RoomServiceJoinRoomProcedure, svc.JoinRoom, opts...))
	mux.Handle(RoomServiceGetRoomProcedure, connect.NewUnaryHandler(RoomServiceGetRoomProcedure, svc.GetRoom, opts...))
	mux.Handle(RoomServiceLeaveRoomProcedure, connect.NewUnaryHandler(RoomServiceLeaveRoomProcedure, svc.LeaveRoom, opts...))
	return "/" + RoomServiceName + "/", mux
}

// RoomServiceClient is a client for the RoomService.
type RoomServiceClient struct {
	createRoom *connect.Client[CreateRoomRequest, RoomResponse]
	joinRoom   *connect.Client[JoinRoomRequest, RoomResponse]
	getRoom    *connect.Client[GetRoomRequest, RoomResponse]
	leaveRoom  *connect.Client[LeaveRoomRequest, LeaveRoomResponse]
}

// NewRoomServiceClient constructs a client for the service at baseURL.
func NewRoomServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *RoomServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &RoomServiceClient{
		createRoom: connect.NewClient[CreateRoomRequest, RoomResponse](httpClient, baseURL+RoomServiceCreateRoomProcedure, opts...),
		joinRoom:   connect.NewClient[JoinRoomRequest, RoomResponse](httpClient, baseURL+RoomServiceJoinRoomProcedure, opts...),
		getRoom:    connect.NewClient[GetRoomRequest, RoomResponse](httpClient, baseURL+RoomServiceGetRoomProcedure, opts...),
		leaveRoom:  connect.NewClient[LeaveRoomRequest, LeaveRoomResponse](httpClient, baseURL+RoomServiceLeaveRoomProcedure, opts...),
	}
}

func (c *RoomServiceClient) CreateRoom(ctx context.Context, req *connect.Request[CreateRoomRequest]) (*connect.Response[RoomResponse], error) {
	return c.createRoom.CallUnary(ctx, req)
}

func (c *RoomServiceClient) JoinRoom(ctx context.Context, req *connect.Request[JoinRoomRequest]) (*connect.Response[RoomResponse], error) {
	return c.joinRoom.CallUnary(ctx, req)
}

func (c *RoomServiceClient) GetRoom(ctx context.Context, req *connect.Request[GetRoomRequest]) (*connect.Response[RoomResponse], error) {
	return c.getRoom.CallUnary(ctx, req)
}

func (c *RoomServiceClient) LeaveRoom(ctx context.Context, req *connect.Request[LeaveRoomRequest]) (*connect.Response[LeaveRoomResponse], error) {
	return c.leaveRoom.CallUnary(ctx, req)
}

// ChoreServiceHandler manages the chores of the caller's room.
type ChoreServiceHandler interface {
	CreateChore(context.Context, *connect.Request[CreateChoreRequest]) (*connect.Response[ChoreResponse], error)
	UpdateChore(context.Context, *connect.Request[UpdateChoreRequest]) (*connect.Response[ChoreResponse], error)
	DeleteChore(context.Context, *connect.Request[DeleteChoreRequest]) (*connect.Response[Empty], error)
	SetChoreCompleted(context.Context, *connect.Request[SetChoreCompletedRequest]) (*connect.Response[ChoreResponse], error)
	ListChores(context.Context, *connect.Request[ListChoresRequest]) (*connect.Response[ListChoresResponse], error)
}

// NewChoreServiceHandler builds an HTTP handler for svc and returns the path to
// mount it on.
func NewChoreServiceHandler(svc ChoreServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(ChoreServiceCreateChoreProcedure, connect.NewUnaryHandler(ChoreServiceCreateChoreProcedure, svc.CreateChore, opts...))
	mux.Handle(ChoreServiceUpdateChoreProcedure, connect.NewUnaryHandler(ChoreServiceUpdateChoreProcedure, svc.UpdateChore, opts...))
	mux.Handle(ChoreServiceDeleteChoreProcedure, connect.NewUnaryHandler(ChoreServiceDeleteChoreProcedure, svc.DeleteChore, opts...))
	mux.Handle(ChoreServiceSetChoreCompletedProcedure, connect.NewUnaryHandler(ChoreServiceSetChoreCompletedProcedure, svc.SetChoreCompleted, opts...))
	mux.Handle(ChoreServiceListChoresProcedure, connect.NewUnaryHandler(ChoreServiceListChoresProcedure, svc.ListChores, opts...))
	return "/" + ChoreServiceName + "/", mux
}

// ChoreServiceClient is a client for the ChoreService.
type ChoreServiceClient struct {
	createChore       *connect.Client[CreateChoreRequest, ChoreResponse]
	updateChore       *connect.Client[UpdateChoreRequest, ChoreResponse]
	deleteChore       *connect.Client[DeleteChoreRequest, Empty]
	setChoreCompleted *connect.Client[SetChoreCompletedRequest, ChoreResponse]
	listChores        *connect.Client[ListChoresRequest, ListChoresResponse]
}

// NewChoreServiceClient constructs a client for the service at baseURL.
func NewChoreServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *ChoreServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &ChoreServiceClient{
		createChore:       connect.NewClient[CreateChoreRequest, ChoreResponse](httpClient, baseURL+ChoreServiceCreateChoreProcedure, opts...),
		updateChore:       connect.NewClient[UpdateChoreRequest, ChoreResponse](httpClient, baseURL+ChoreServiceUpdateChoreProcedure, opts...),
		deleteChore:       connect.NewClient[DeleteChoreRequest, Empty](httpClient, baseURL+ChoreServiceDeleteChoreProcedure, opts...),
		setChoreCompleted: connect.NewClient[SetChoreCompletedRequest, ChoreResponse](httpClient, baseURL+ChoreServiceSetChoreCompletedProcedure, opts...),
		listChores:        connect.NewClient[ListChoresRequest, ListChoresResponse](httpClient, baseURL+ChoreServiceListChoresProcedure, opts...),
	}
}

func (c *ChoreServiceClient) CreateChore(ctx context.Context, req *connect.Request[CreateChoreRequest]) (*connect.Response[ChoreResponse], error) {
	return c.createChore.CallUnary(ctx, req)
}

func (c *ChoreServiceClient) UpdateChore(ctx context.Context, req *connect.Request[UpdateChoreRequest]) (*connect.Response[ChoreResponse], error) {
	return c.updateChore.CallUnary(ctx, req)
}

func (c *ChoreServiceClient) DeleteChore(ctx context.Context, req *connect.Request[DeleteChoreRequest]) (*connect.Response[Empty], error) {
	return c.deleteChore.CallUnary(ctx, req)
}

func (c *ChoreServiceClient) SetChoreCompleted(ctx context.Context, req *connect.Request[SetChoreCompletedRequest]) (*connect.Response[ChoreResponse], error) {
	return c.setChoreCompleted.CallUnary(ctx, req)
}

func (c *ChoreServiceClient) ListChores(ctx context.Context, req *connect.Request[ListChoresRequest]) (*connect.Response[ListChoresResponse], error) {
	return c.listChores.CallUnary(ctx, req)
}

// LedgerServiceHandler records the shared expenses of the caller's room.
type LedgerServiceHandler interface {
	OpenPeriod(context.Context, *connect.Request[OpenPeriodRequest]) (*connect.Response[PeriodResponse], error)
	ClosePeriod(context.Context, *connect.Request[ClosePeriodRequest]) (*connect.Response[ClosePeriodResponse], error)
	ListPeriods(context.Context, *connect.Request[ListPeriodsRequest]) (*connect.Response[ListPeriodsResponse], error)
	AddExpense(context.Context, *connect.Request[AddExpenseRequest]) (*connect.Response[ExpenseResponse], error)
	RemoveExpense(context.Context, *connect.Request[RemoveExpenseRequest]) (*connect.Response[Empty], error)
	ListExpenses(context.Context, *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error)
	GetBalances(context.Context, *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error)
	ListShares(context.Context, *connect.Request[ListSharesRequest]) (*connect.Response[ListSharesResponse], error)
}

// NewLedgerServiceHandler builds an HTTP handler for svc and returns the path to
// mount it on.
func NewLedgerServiceHandler(svc LedgerServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(LedgerServiceOpenPeriodProcedure, connect.NewUnaryHandler(LedgerServiceOpenPeriodProcedure, svc.OpenPeriod, opts...))
	mux.Handle(LedgerServiceClosePeriodProcedure, connect.NewUnaryHandler(LedgerServiceClosePeriodProcedure, svc.ClosePeriod, opts...))
	mux.Handle(LedgerServiceListPeriodsProcedure, connect.NewUnaryHandler(LedgerServiceListPeriodsProcedure, svc.ListPeriods, opts...))
	mux.Handle(LedgerServiceAddExpenseProcedure, connect.NewUnaryHandler(LedgerServiceAddExpenseProcedure, svc.AddExpense, opts...))
	mux.Handle(LedgerServiceRemoveExpenseProcedure, connect.NewUnaryHandler(LedgerServiceRemoveExpenseProcedure, svc.RemoveExpense, opts...))
	mux.Handle(LedgerServiceListExpensesProcedure, connect.NewUnaryHandler(LedgerServiceListExpensesProcedure, svc.ListExpenses, opts...))
	mux.Handle(LedgerServiceGetBalancesProcedure, connect.NewUnaryHandler(LedgerServiceGetBalancesProcedure, svc.GetBalances, opts...))
	mux.Handle(LedgerServiceListSharesProcedure, connect.NewUnaryHandler(LedgerServiceListSharesProcedure, svc.ListShares, opts...))
	return "/" + LedgerServiceName + "/", mux
}

// LedgerServiceClient is a client for the LedgerService.
type LedgerServiceClient struct {
	openPeriod    *connect.Client[OpenPeriodRequest, PeriodResponse]
	closePeriod   *connect.Client[ClosePeriodRequest, ClosePeriodResponse]
	listPeriods   *connect.Client[ListPeriodsRequest, ListPeriodsResponse]
	addExpense    *connect.Client[AddExpenseRequest, ExpenseResponse]
	removeExpense *connect.Client[RemoveExpenseRequest, Empty]
	listExpenses  *connect.Client[ListExpensesRequest, ListExpensesResponse]
	getBalances   *connect.Client[GetBalancesRequest, GetBalancesResponse]
	listShares    *connect.Client[ListSharesRequest, ListSharesResponse]
}

// NewLedgerServiceClient constructs a client for the service at baseURL.
func NewLedgerServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *LedgerServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &LedgerServiceClient{
		openPeriod:    connect.NewClient[OpenPeriodRequest, PeriodResponse](httpClient, baseURL+LedgerServiceOpenPeriodProcedure, opts...),
		closePeriod:   connect.NewClient[ClosePeriodRequest, ClosePeriodResponse](httpClient, baseURL+LedgerServiceClosePeriodProcedure, opts...),
		listPeriods:   connect.NewClient[ListPeriodsRequest, ListPeriodsResponse](httpClient, baseURL+LedgerServiceListPeriodsProcedure, opts...),
		addExpense:    connect.NewClient[AddExpenseRequest, ExpenseResponse](httpClient, baseURL+LedgerServiceAddExpenseProcedure, opts...),
		removeExpense: connect.NewClient[RemoveExpenseRequest, Empty](httpClient, baseURL+LedgerServiceRemoveExpenseProcedure, opts...),
		listExpenses:  connect.NewClient[ListExpensesRequest, ListExpensesResponse](httpClient, baseURL+LedgerServiceListExpensesProcedure, opts...),
		getBalances:   connect.NewClient[GetBalancesRequest, GetBalancesResponse](httpClient, baseURL+LedgerServiceGetBalancesProcedure, opts...),
		listShares:    connect.NewClient[ListSharesRequest, ListSharesResponse](httpClient, baseURL+LedgerServiceListSharesProcedure, opts...),
	}
}

func (c *LedgerServiceClient) OpenPeriod(ctx context.Context, req *connect.Request[OpenPeriodRequest]) (*connect.Response[PeriodResponse], error) {
	return c.openPeriod.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ClosePeriod(ctx context.Context, req *connect.Request[ClosePeriodRequest]) (*connect.Response[ClosePeriodResponse], error) {
	return c.closePeriod.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListPeriods(ctx context.Context, req *connect.Request[ListPeriodsRequest]) (*connect.Response[ListPeriodsResponse], error) {
	return c.listPeriods.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) AddExpense(ctx context.Context, req *connect.Request[AddExpenseRequest]) (*connect.Response[ExpenseResponse], error) {
	return c.addExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) RemoveExpense(ctx context.Context, req *connect.Request[RemoveExpenseRequest]) (*connect.Response[Empty], error) {
	return c.removeExpense.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListExpenses(ctx context.Context, req *connect.Request[ListExpensesRequest]) (*connect.Response[ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) GetBalances(ctx context.Context, req *connect.Request[GetBalancesRequest]) (*connect.Response[GetBalancesResponse], error) {
	return c.getBalances.CallUnary(ctx, req)
}

func (c *LedgerServiceClient) ListShares(ctx context.Context, req *connect.Request[ListSharesRequest]) (*connect.Response[ListSharesResponse], error) {
	return c.listShares.CallUnary(ctx, req)
}

// NotificationServiceHandler delivers messages between roommates.
type NotificationServiceHandler interface {
	SendNotification(context.Context, *connect.Request[SendNotificationRequest]) (*connect.Response[NotificationResponse], error)
	ListNotifications(context.Context, *connect.Request[ListNotificationsRequest]) (*connect.Response[ListNotificationsResponse], error)
	MarkNotificationRead(context.Context, *connect.Request[MarkNotificationReadRequest]) (*connect.Response[NotificationResponse], error)
	DeleteNotification(context.Context, *connect.Request[DeleteNotificationRequest]) (*connect.Response[Empty], error)
}

// NewNotificationServiceHandler builds an HTTP handler for svc and returns the path to
// mount it on.
func NewNotificationServiceHandler(svc NotificationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(NotificationServiceSendNotificationProcedure, connect.NewUnaryHandler(NotificationServiceSendNotificationProcedure, svc.SendNotification, opts...))
	mux.Handle(NotificationServiceListNotificationsProcedure, connect.NewUnaryHandler(NotificationServiceListNotificationsProcedure, svc.ListNotifications, opts...))
	mux.Handle(NotificationServiceMarkNotificationReadProcedure, connect.NewUnaryHandler(NotificationServiceMarkNotificationReadProcedure, svc.MarkNotificationRead, opts...))
	mux.Handle(NotificationServiceDeleteNotificationProcedure, connect.NewUnaryHandler(NotificationServiceDeleteNotificationProcedure, svc.DeleteNotification, opts...))
	return "/" + NotificationServiceName + "/", mux
}

// NotificationServiceClient is a client for the NotificationService.
type NotificationServiceClient struct {
	sendNotification     *connect.Client[SendNotificationRequest, NotificationResponse]
	listNotifications    *connect.Client[ListNotificationsRequest, ListNotificationsResponse]
	markNotificationRead *connect.Client[MarkNotificationReadRequest, NotificationResponse]
	deleteNotification   *connect.Client[DeleteNotificationRequest, Empty]
}

// NewNotificationServiceClient constructs a client for the service at baseURL.
func NewNotificationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *NotificationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &NotificationServiceClient{
		sendNotification:     connect.NewClient[SendNotificationRequest, NotificationResponse](httpClient, baseURL+NotificationServiceSendNotificationProcedure, opts...),
		listNotifications:    connect.NewClient[ListNotificationsRequest, ListNotificationsResponse](httpClient, baseURL+NotificationServiceListNotificationsProcedure, opts...),
		markNotificationRead: connect.NewClient[MarkNotificationReadRequest, NotificationResponse](httpClient, baseURL+NotificationServiceMarkNotificationReadProcedure, opts...),
		deleteNotification:   connect.NewClient[DeleteNotificationRequest, Empty](httpClient, baseURL+NotificationServiceDeleteNotificationProcedure, opts...),
	}
}

func (c *NotificationServiceClient) SendNotification(ctx context.Context, req *connect.Request[SendNotificationRequest]) (*connect.Response[NotificationResponse], error) {
	return c.sendNotification.CallUnary(ctx, req)
}

func (c *NotificationServiceClient) ListNotifications(ctx context.Context, req *connect.Request[ListNotificationsRequest]) (*connect.Response[ListNotificationsResponse], error) {
	return c.listNotifications.CallUnary(ctx, req)
}

func (c *NotificationServiceClient) MarkNotificationRead(ctx context.Context, req *connect.Request[MarkNotificationReadRequest]) (*connect.Response[NotificationResponse], error) {
	return c.markNotificationRead.CallUnary(ctx, req)
}

func (c *NotificationServiceClient) DeleteNotification(ctx context.Context, req *connect.Request[DeleteNotificationRequest]) (*connect.Response[Empty], error) {
	return c.deleteNotification.CallUnary(ctx, req)
}
