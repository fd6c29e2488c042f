// Package docs registers the OpenAPI document of the portal API with swag so
// echo-swagger can serve it. Regenerate with:
//
//	swag init -g cmd/server/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Login",
                "parameters": [{"description": "Login credentials", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.loginRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.loginResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/ceo/employees": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "List employees",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.userResponse"}}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Create an employee",
                "parameters": [{"description": "Employee", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userMessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/ceo/employees/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Update an employee",
                "parameters": [
                    {"type": "string", "description": "Employee id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userMessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Delete an employee",
                "parameters": [{"type": "string", "description": "Employee id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/ceo/clients": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "List clients",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.userResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Create a client",
                "parameters": [{"description": "Client", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createUserRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.userMessageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/ceo/clients/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Update a client",
                "parameters": [
                    {"type": "string", "description": "Client id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.userMessageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Delete a client",
                "parameters": [{"type": "string", "description": "Client id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/ceo/projects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "List projects",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.projectResponse"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Create a project",
                "parameters": [{"description": "Project", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.createProjectRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.projectResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/ceo/projects/stats": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Project statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.projectStatsResponse"}}
                }
            }
        },
        "/api/ceo/projects/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Get a project",
                "parameters": [{"type": "string", "description": "Project id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.projectResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Update a project",
                "parameters": [
                    {"type": "string", "description": "Project id", "name": "id", "in": "path", "required": true},
                    {"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateProjectRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.projectResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Delete a project",
                "parameters": [{"type": "string", "description": "Project id", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/ceo/timesheets": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "List every timesheet",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.timesheetResponse"}}}
                }
            }
        },
        "/api/ceo/timesheets/{id}/status": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ceo"],
                "summary": "Review a timesheet",
                "parameters": [
                    {"type": "string", "description": "Timesheet id", "name": "id", "in": "path", "required": true},
                    {"description": "Target status", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.reviewTimesheetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.timesheetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/employee/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["portal"],
                "summary": "Own profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.profileResponse"}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employee"],
                "summary": "Edit own profile",
                "parameters": [{"description": "Fields to change", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateProfileRequest"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.profileResponse"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/employee/projects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["employee"],
                "summary": "Projects the caller is assigned to",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.projectResponse"}}}
                }
            }
        },
        "/api/employee/timesheet": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employee"],
                "summary": "Submit a timesheet",
                "parameters": [{"description": "Timesheet", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.submitTimesheetRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.timesheetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/employee/timesheet/{id}": {
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["employee"],
                "summary": "Update own timesheet hours",
                "parameters": [
                    {"type": "string", "description": "Timesheet id", "name": "id", "in": "path", "required": true},
                    {"description": "New hours", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.updateTimesheetRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.timesheetResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/handler.messageResponse"}}
                }
            }
        },
        "/api/employee/timesheets": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["employee"],
                "summary": "List own timesheets",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.timesheetResponse"}}}
                }
            }
        },
        "/api/client/profile": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["portal"],
                "summary": "Own profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.profileResponse"}}
                }
            }
        },
        "/api/client/projects": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["client"],
                "summary": "Projects owned by the caller",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.projectResponse"}}}
                }
            }
        }
    },
    "definitions": {
        "handler.messageResponse": {"type": "object", "properties": {"message": {"type": "string"}}},
        "handler.loginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "handler.companyDetailsPayload": {"type": "object", "properties": {"name": {"type": "string"}, "address": {"type": "string"}, "phone": {"type": "string"}}},
        "handler.sessionUserResponse": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}, "access": {"type": "string"}, "department": {"type": "string"}, "position": {"type": "string"}, "skills": {"type": "array", "items": {"type": "string"}}, "companyDetails": {"$ref": "#/definitions/handler.companyDetailsPayload"}}},
        "handler.loginResponse": {"type": "object", "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/handler.sessionUserResponse"}}},
        "handler.createUserRequest": {"type": "object", "required": ["name", "email", "password"], "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "password": {"type": "string"}, "contact": {"type": "string"}, "department": {"type": "string"}, "position": {"type": "string"}, "skills": {"type": "array", "items": {"type": "string"}}, "companyDetails": {"$ref": "#/definitions/handler.companyDetailsPayload"}}},
        "handler.updateUserRequest": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "contact": {"type": "string"}, "access": {"type": "string", "enum": ["active", "inactive"]}, "department": {"type": "string"}, "position": {"type": "string"}, "skills": {"type": "array", "items": {"type": "string"}}, "companyDetails": {"$ref": "#/definitions/handler.companyDetailsPayload"}}},
        "handler.updateProfileRequest": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}, "contact": {"type": "string"}, "department": {"type": "string"}, "position": {"type": "string"}, "skills": {"type": "array", "items": {"type": "string"}}}},
        "handler.userResponse": {"type": "object", "properties": {"_id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "contact": {"type": "string"}, "role": {"type": "string"}, "access": {"type": "string"}, "department": {"type": "string"}, "position": {"type": "string"}, "skills": {"type": "array", "items": {"type": "string"}}, "companyDetails": {"$ref": "#/definitions/handler.companyDetailsPayload"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "handler.userMessageResponse": {"type": "object", "properties": {"message": {"type": "string"}, "user": {"$ref": "#/definitions/handler.userResponse"}}},
        "handler.projectRefResponse": {"type": "object", "properties": {"_id": {"type": "string"}, "name": {"type": "string"}, "status": {"type": "string"}}},
        "handler.profileResponse": {"type": "object", "properties": {"_id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "role": {"type": "string"}, "access": {"type": "string"}, "projectAssignments": {"type": "array", "items": {"$ref": "#/definitions/handler.projectRefResponse"}}}},
        "handler.userSummaryResponse": {"type": "object", "properties": {"_id": {"type": "string"}, "name": {"type": "string"}, "email": {"type": "string"}, "position": {"type": "string"}, "department": {"type": "string"}, "companyDetails": {"$ref": "#/definitions/handler.companyDetailsPayload"}}},
        "handler.assignmentRequest": {"type": "object", "properties": {"employee": {"type": "string"}, "role": {"type": "string", "enum": ["lead", "developer", "designer", "tester"]}}},
        "handler.milestoneRequest": {"type": "object", "required": ["name"], "properties": {"name": {"type": "string"}, "dueDate": {"type": "string"}, "status": {"type": "string", "enum": ["pending", "completed", "delayed"]}}},
        "handler.timelineRequest": {"type": "object", "properties": {"startDate": {"type": "string"}, "endDate": {"type": "string"}, "milestones": {"type": "array", "items": {"$ref": "#/definitions/handler.milestoneRequest"}}}},
        "handler.createProjectRequest": {"type": "object", "required": ["name", "description", "clientId", "budget"], "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "clientId": {"type": "string"}, "assignedEmployees": {"type": "array", "items": {"$ref": "#/definitions/handler.assignmentRequest"}}, "startDate": {"type": "string"}, "endDate": {"type": "string"}, "timeline": {"$ref": "#/definitions/handler.timelineRequest"}, "budget": {"type": "number"}, "priority": {"type": "string", "enum": ["low", "medium", "high"]}}},
        "handler.updateProjectRequest": {"type": "object", "properties": {"name": {"type": "string"}, "description": {"type": "string"}, "clientId": {"type": "string"}, "assignedEmployees": {"type": "array", "items": {"$ref": "#/definitions/handler.assignmentRequest"}}, "startDate": {"type": "string"}, "endDate": {"type": "string"}, "timeline": {"$ref": "#/definitions/handler.timelineRequest"}, "budget": {"type": "number"}, "priority": {"type": "string", "enum": ["low", "medium", "high"]}, "status": {"type": "string", "enum": ["ongoing", "hold", "completed"]}}},
        "handler.assignmentResponse": {"type": "object", "properties": {"employee": {"$ref": "#/definitions/handler.userSummaryResponse"}, "role": {"type": "string"}}},
        "handler.milestoneResponse": {"type": "object", "properties": {"name": {"type": "string"}, "dueDate": {"type": "string"}, "status": {"type": "string"}}},
        "handler.timelineResponse": {"type": "object", "properties": {"startDate": {"type": "string"}, "endDate": {"type": "string"}, "milestones": {"type": "array", "items": {"$ref": "#/definitions/handler.milestoneResponse"}}}},
        "handler.projectResponse": {"type": "object", "properties": {"_id": {"type": "string"}, "name": {"type": "string"}, "description": {"type": "string"}, "client": {"$ref": "#/definitions/handler.userSummaryResponse"}, "assignedEmployees": {"type": "array", "items": {"$ref": "#/definitions/handler.assignmentResponse"}}, "timeline": {"$ref": "#/definitions/handler.timelineResponse"}, "status": {"type": "string"}, "budget": {"type": "number"}, "priority": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}},
        "handler.priorityStatsResponse": {"type": "object", "properties": {"low": {"type": "integer"}, "medium": {"type": "integer"}, "high": {"type": "integer"}}},
        "handler.projectStatsResponse": {"type": "object", "properties": {"totalProjects": {"type": "integer"}, "ongoingProjects": {"type": "integer"}, "completedProjects": {"type": "integer"}, "holdProjects": {"type": "integer"}, "byPriority": {"$ref": "#/definitions/handler.priorityStatsResponse"}}},
        "handler.hoursPayload": {"type": "object", "properties": {"monday": {"type": "integer"}, "tuesday": {"type": "integer"}, "wednesday": {"type": "integer"}, "thursday": {"type": "integer"}, "friday": {"type": "integer"}, "saturday": {"type": "integer"}, "sunday": {"type": "integer"}}},
        "handler.submitTimesheetRequest": {"type": "object", "required": ["projectId", "week"], "properties": {"projectId": {"type": "string"}, "managerId": {"type": "string"}, "week": {"type": "string"}, "hours": {"$ref": "#/definitions/handler.hoursPayload"}}},
        "handler.updateTimesheetRequest": {"type": "object", "required": ["hours"], "properties": {"hours": {"$ref": "#/definitions/handler.hoursPayload"}}},
        "handler.reviewTimesheetRequest": {"type": "object", "required": ["status"], "properties": {"status": {"type": "string", "enum": ["submitted", "inProgress", "approved"]}}},
        "handler.timesheetResponse": {"type": "object", "properties": {"_id": {"type": "string"}, "employee": {"$ref": "#/definitions/handler.userSummaryResponse"}, "project": {"$ref": "#/definitions/handler.projectRefResponse"}, "manager": {"$ref": "#/definitions/handler.userSummaryResponse"}, "week": {"type": "string"}, "hours": {"$ref": "#/definitions/handler.hoursPayload"}, "status": {"type": "string"}, "createdAt": {"type": "string"}, "updatedAt": {"type": "string"}}}
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and the JWT.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Business Portal API",
	Description:      "CEO, employee and client portal: directory, projects and timesheets.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
