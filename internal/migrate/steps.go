package migrate

// Steps is the registered migration table. Each step carries the literal
// shapes that were current when it shipped; later changes to the defaults
// package must not be folded back into old steps.
var Steps = map[int]Step{
	1:  introduceRoleTable,
	2:  backfillEventStatus,
	3:  removeRetiredDemoServices,
	4:  introduceBrandingSettings,
	5:  backfillServiceUnit,
	6:  reassignLegacyCateringID,
	7:  introduceNotifications,
	8:  introduceProcurement,
	9:  introduceRFQs,
	10: appendVendorCatalog,
	11: appendProductionCatalog,
	12: introduceMotionSettings,
}

// v1: pre-versioned saves carried no role table at all.
func introduceRoleTable(state map[string]any) map[string]any {
	if _, ok := state["roles"].(map[string]any); ok {
		return state
	}
	state["roles"] = map[string]any{
		"Admin": map[string]any{
			"canManageEvents":  true,
			"canManageClients": true,
			"canManageUsers":   true,
			"canEditSettings":  true,
		},
		"Manager": map[string]any{
			"canManageEvents":  true,
			"canManageClients": true,
			"canManageUsers":   false,
			"canEditSettings":  false,
		},
		"Sales": map[string]any{
			"canManageEvents":  true,
			"canManageClients": true,
			"canManageUsers":   false,
			"canEditSettings":  false,
		},
	}
	return state
}

// v2: events gained an explicit status field.
func backfillEventStatus(state map[string]any) map[string]any {
	events := sliceAt(state, "events")
	eachObject(events, func(event map[string]any) {
		if _, ok := event["status"].(string); !ok {
			event["status"] = "draft"
		}
	})
	state["events"] = events
	return state
}

// v3: the seeded demo services were retired from the catalog.
func removeRetiredDemoServices(state map[string]any) map[string]any {
	state["services"] = removeByID(sliceAt(state, "services"), "id", "s-demo-001", "s-demo-002")
	return state
}

// v4: branding moved out of hardcoded document headers into settings.
func introduceBrandingSettings(state map[string]any) map[string]any {
	settings := mapAt(state, "settings")
	if _, ok := settings["branding"].(map[string]any); !ok {
		settings["branding"] = map[string]any{
			"companyName": "Your Events Co.",
			"tagline":     "",
		}
	}
	state["settings"] = settings
	return state
}

// v5: services gained a pricing unit.
func backfillServiceUnit(state map[string]any) map[string]any {
	services := sliceAt(state, "services")
	eachObject(services, func(service map[string]any) {
		if _, ok := service["unit"].(string); !ok {
			service["unit"] = "unit"
		}
	})
	state["services"] = services
	return state
}

// v6: the original catering entry shipped with a two-digit slug; catalog IDs
// were normalized to three digits. Event references follow the rename.
func reassignLegacyCateringID(state map[string]any) map[string]any {
	const oldID, newID = "s-cat-01", "s-cat-001"

	services := sliceAt(state, "services")
	eachObject(services, func(service map[string]any) {
		if stringField(service, "id") == oldID {
			service["id"] = newID
		}
	})
	state["services"] = services

	events := sliceAt(state, "events")
	eachObject(events, func(event map[string]any) {
		ids, ok := event["serviceIds"].([]any)
		if !ok {
			return
		}
		for i, id := range ids {
			if id == oldID {
				ids[i] = newID
			}
		}
	})
	state["events"] = events
	return state
}

// v7: in-app notification feed.
func introduceNotifications(state map[string]any) map[string]any {
	if _, ok := state["notifications"].([]any); !ok {
		state["notifications"] = []any{}
	}
	return state
}

// v8: supplier directory and procurement documents.
func introduceProcurement(state map[string]any) map[string]any {
	if _, ok := state["suppliers"].([]any); !ok {
		state["suppliers"] = []any{}
	}
	if _, ok := state["procurementDocuments"].([]any); !ok {
		state["procurementDocuments"] = []any{}
	}
	return state
}

// v9: requests for quotation.
func introduceRFQs(state map[string]any) map[string]any {
	if _, ok := state["rfqs"].([]any); !ok {
		state["rfqs"] = []any{}
	}
	return state
}

// v10: venue sourcing services joined the catalog. Union by ID so reruns and
// user-edited copies are left alone.
func appendVendorCatalog(state map[string]any) map[string]any {
	state["services"] = appendMissing(sliceAt(state, "services"), "id", []map[string]any{
		{
			"id":          "s-ven-001",
			"name":        "Venue Sourcing",
			"category":    "venue",
			"unit":        "engagement",
			"unitPrice":   float64(1200),
			"description": "Shortlisting, site visits, and contract negotiation",
		},
		{
			"id":        "s-ven-002",
			"name":      "Venue Styling",
			"category":  "venue",
			"unit":      "engagement",
			"unitPrice": float64(750),
		},
	})
	return state
}

// v11: production catalog additions, plus a category backfill for services
// created before categories existed.
func appendProductionCatalog(state map[string]any) map[string]any {
	services := appendMissing(sliceAt(state, "services"), "id", []map[string]any{
		{
			"id":        "s-av-004",
			"name":      "Stage Lighting Rig",
			"category":  "av",
			"unit":      "day",
			"unitPrice": float64(900),
		},
		{
			"id":        "s-dec-005",
			"name":      "Thematic Backdrops",
			"category":  "decor",
			"unit":      "piece",
			"unitPrice": float64(320),
		},
	})
	eachObject(services, func(service map[string]any) {
		if _, ok := service["category"].(string); !ok {
			service["category"] = "general"
		}
	})
	state["services"] = services
	return state
}

// v12: motion preferences for document preview transitions.
func introduceMotionSettings(state map[string]any) map[string]any {
	settings := mapAt(state, "settings")
	if _, ok := settings["motion"].(map[string]any); !ok {
		settings["motion"] = map[string]any{
			"enabled":    true,
			"durationMs": float64(200),
			"easing":     "ease-out",
		}
	}
	state["settings"] = settings
	return state
}
