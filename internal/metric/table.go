package metric

// entry is one compiled-in statistic definition.
type entry struct {
	name string
	unit string
	kind Kind
}

// builtin holds the statistics exposed by YugabyteDB masters and tablet servers.
var builtin = []entry{
	{"active_background_compaction_input_bytes_added", "bytes", KindGauge},
	{"active_background_compaction_input_bytes_removed", "bytes", KindGauge},
	{"active_background_compaction_input_files_added", "files", KindGauge},
	{"active_background_compaction_input_files_removed", "files", KindGauge},
	{"active_background_compaction_tasks_added", "tasks", KindGauge},
	{"active_background_compaction_tasks_removed", "tasks", KindGauge},
	{"active_full_compaction_input_bytes_added", "bytes", KindGauge},
	{"active_full_compaction_input_bytes_removed", "bytes", KindGauge},
	{"active_full_compaction_input_files_added", "files", KindGauge},
	{"active_full_compaction_input_files_removed", "files", KindGauge},
	{"active_full_compaction_tasks_added", "tasks", KindGauge},
	{"active_full_compaction_tasks_removed", "tasks", KindGauge},
	{"active_post_split_compaction_input_bytes_added", "bytes", KindGauge},
	{"active_post_split_compaction_input_bytes_removed", "bytes", KindGauge},
	{"active_post_split_compaction_input_files_added", "files", KindGauge},
	{"active_post_split_compaction_input_files_removed", "files", KindGauge},
	{"active_post_split_compaction_tasks_added", "tasks", KindGauge},
	{"active_post_split_compaction_tasks_removed", "tasks", KindGauge},
	{"active_task_metrics_compaction_input_bytes_added", "bytes", KindGauge},
	{"active_task_metrics_compaction_input_bytes_removed", "bytes", KindGauge},
	{"active_task_metrics_compaction_input_files_added", "files", KindGauge},
	{"active_task_metrics_compaction_input_files_removed", "files", KindGauge},
	{"active_task_metrics_compaction_tasks_added", "tasks", KindGauge},
	{"active_task_metrics_compaction_tasks_removed", "tasks", KindGauge},
	{"all_operations_inflight", "operations", KindGauge},
	{"alter_schema_operations_inflight", "operations", KindGauge},
	{"automatic_split_manager_time", "milliseconds", KindGauge},
	{"block_cache_evictions", "blocks", KindCounter},
	{"block_cache_hits", "blocks", KindCounter},
	{"block_cache_hits_caching", "blocks", KindCounter},
	{"block_cache_inserts", "blocks", KindCounter},
	{"block_cache_lookups", "blocks", KindCounter},
	{"block_cache_misses", "blocks", KindCounter},
	{"block_cache_misses_caching", "blocks", KindCounter},
	{"block_cache_multi_touch_usage", "bytes", KindGauge},
	{"block_cache_single_touch_usage", "bytes", KindGauge},
	{"block_cache_usage", "bytes", KindGauge},
	{"cdc_rpc_proxy_count", "requests", KindCounter},
	{"change_auto_flags_config_operations_inflight", "operations", KindGauge},
	{"consistent_prefix_failed_reads", "requests", KindCounter},
	{"consistent_prefix_read_requests", "requests", KindCounter},
	{"consistent_prefix_successful_reads", "requests", KindCounter},
	{"cpu_stime", "milliseconds", KindCounter},
	{"cpu_utime", "milliseconds", KindCounter},
	{"cql_parsers_alive", "parsers", KindGauge},
	{"cql_parsers_created", "parsers", KindCounter},
	{"cql_processors_alive", "processors", KindGauge},
	{"cql_processors_created", "processors", KindCounter},
	{"deadlock_detector_waiters", "transactions", KindGauge},
	{"duration_ms_loading_entries_with_type_1", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_10", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_11", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_15", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_2", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_3", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_4", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_5", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_6", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_7", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_8", "milliseconds", KindCounter},
	{"duration_ms_loading_entries_with_type_9", "milliseconds", KindCounter},
	{"empty_operations_inflight", "operations", KindGauge},
	{"expired_transactions", "transactions", KindCounter},
	{"follower_lag_ms", "milliseconds", KindGauge},
	{"follower_memory_pressure_rejections", "rejections", KindCounter},
	{"generic_current_allocated_bytes", "bytes", KindGauge},
	{"generic_heap_size", "bytes", KindGauge},
	{"glog_error_messages", "messages", KindCounter},
	{"glog_info_messages", "messages", KindCounter},
	{"glog_warning_messages", "messages", KindCounter},
	{"history_cutoff_operations_inflight", "operations", KindGauge},
	{"hybrid_clock_error", "microseconds", KindGauge},
	{"hybrid_clock_hybrid_time", "microseconds", KindGauge},
	{"hybrid_clock_skew", "microseconds", KindGauge},
	{"in_progress_ops", "operations", KindGauge},
	{"involuntary_context_switches", "context switches", KindCounter},
	{"iproxy_response_bytes_yb_master_MasterAdmin_AddTransactionStatusTablet", "bytes", KindCounter},
	{"is_load_balancing_enabled", "indicator", KindGauge},
	{"is_raft_leader", "indicator", KindGauge},
	{"leader_memory_pressure_rejections", "rejections", KindCounter},
	{"log_bytes_logged", "bytes", KindCounter},
	{"log_cache_disk_reads", "reads", KindCounter},
	{"log_cache_num_ops", "operations", KindGauge},
	{"log_cache_size", "bytes", KindGauge},
	{"log_gc_running", "operations", KindGauge},
	{"log_reader_bytes_read", "bytes", KindCounter},
	{"log_reader_entries_read", "entries", KindCounter},
	{"log_wal_size", "bytes", KindGauge},
	{"majority_done_ops", "operations", KindGauge},
	{"majority_sst_files_rejections", "rejections", KindCounter},
	{"mem_tracker", "bytes", KindGauge},
	{"mem_tracker_BlockBasedTable", "bytes", KindGauge},
	{"mem_tracker_BlockBasedTable_IntentsDB", "bytes", KindGauge},
	{"mem_tracker_BlockBasedTable_RegularDB", "bytes", KindGauge},
	{"mem_tracker_CQL_prepared_statements", "bytes", KindGauge},
	{"mem_tracker_CQL_processors", "bytes", KindGauge},
	{"mem_tracker_Call", "bytes", KindGauge},
	{"mem_tracker_Call_CQL", "bytes", KindGauge},
	{"mem_tracker_Call_Inbound_RPC", "bytes", KindGauge},
	{"mem_tracker_Call_Outbound_RPC", "bytes", KindGauge},
	{"mem_tracker_Call_Redis", "bytes", KindGauge},
	{"mem_tracker_Compressed_Read_Buffer", "bytes", KindGauge},
	{"mem_tracker_Compressed_Read_Buffer_Receive", "bytes", KindGauge},
	{"mem_tracker_Encrypted_Read_Buffer_Receive", "bytes", KindGauge},
	{"mem_tracker_IntentsDB", "bytes", KindGauge},
	{"mem_tracker_IntentsDB_MemTable", "bytes", KindGauge},
	{"mem_tracker_OperationsFromDisk", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_CQL", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_CQL_Reading", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_CQL_Receive", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_CQL_Sending", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Inbound_RPC", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Inbound_RPC_Reading", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Inbound_RPC_Receive", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Inbound_RPC_Sending", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Outbound_RPC", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Outbound_RPC_Queueing", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Outbound_RPC_Reading", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Outbound_RPC_Receive", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Outbound_RPC_Sending", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Redis", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Redis_Allocated", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Redis_Mandatory", "bytes", KindGauge},
	{"mem_tracker_Read_Buffer_Redis_Used", "bytes", KindGauge},
	{"mem_tracker_RegularDB", "bytes", KindGauge},
	{"mem_tracker_RegularDB_MemTable", "bytes", KindGauge},
	{"mem_tracker_Tablets", "bytes", KindGauge},
	{"mem_tracker_log_cache", "bytes", KindGauge},
	{"mem_tracker_operation_tracker", "bytes", KindGauge},
	{"nonactive_background_compaction_input_bytes_added", "bytes", KindGauge},
	{"nonactive_background_compaction_input_bytes_removed", "bytes", KindGauge},
	{"nonactive_background_compaction_input_files_added", "files", KindGauge},
	{"nonactive_background_compaction_input_files_removed", "files", KindGauge},
	{"nonactive_background_compaction_tasks_added", "tasks", KindGauge},
	{"nonactive_background_compaction_tasks_removed", "tasks", KindGauge},
	{"nonactive_full_compaction_input_bytes_added", "bytes", KindGauge},
	{"nonactive_full_compaction_input_bytes_removed", "bytes", KindGauge},
	{"nonactive_full_compaction_input_files_added", "files", KindGauge},
	{"nonactive_full_compaction_input_files_removed", "files", KindGauge},
	{"nonactive_full_compaction_tasks_added", "tasks", KindGauge},
	{"nonactive_full_compaction_tasks_removed", "tasks", KindGauge},
	{"nonactive_post_split_compaction_input_bytes_added", "bytes", KindGauge},
	{"nonactive_post_split_compaction_input_bytes_removed", "bytes", KindGauge},
	{"nonactive_post_split_compaction_input_files_added", "files", KindGauge},
	{"nonactive_post_split_compaction_input_files_removed", "files", KindGauge},
	{"nonactive_post_split_compaction_tasks_added", "tasks", KindGauge},
	{"nonactive_post_split_compaction_tasks_removed", "tasks", KindGauge},
	{"nonactive_task_metrics_compaction_input_bytes_added", "bytes", KindGauge},
	{"nonactive_task_metrics_compaction_input_bytes_removed", "bytes", KindGauge},
	{"nonactive_task_metrics_compaction_input_files_added", "files", KindGauge},
	{"nonactive_task_metrics_compaction_input_files_removed", "files", KindGauge},
	{"nonactive_task_metrics_compaction_tasks_added", "tasks", KindGauge},
	{"nonactive_task_metrics_compaction_tasks_removed", "tasks", KindGauge},
	{"not_leader_rejections", "rejections", KindCounter},
	{"num_entries_with_type_10_loaded", "entries", KindCounter},
	{"num_entries_with_type_11_loaded", "entries", KindCounter},
	{"num_entries_with_type_15_loaded", "entries", KindCounter},
	{"num_entries_with_type_1_loaded", "entries", KindCounter},
	{"num_entries_with_type_2_loaded", "entries", KindCounter},
	{"num_entries_with_type_3_loaded", "entries", KindCounter},
	{"num_entries_with_type_4_loaded", "entries", KindCounter},
	{"num_entries_with_type_5_loaded", "entries", KindCounter},
	{"num_entries_with_type_6_loaded", "entries", KindCounter},
	{"num_entries_with_type_7_loaded", "entries", KindCounter},
	{"num_entries_with_type_8_loaded", "entries", KindCounter},
	{"num_entries_with_type_9_loaded", "entries", KindCounter},
	{"num_tablet_servers_dead", "entries", KindGauge},
	{"num_tablet_servers_live", "entries", KindGauge},
	{"operation_memory_pressure_rejections", "rejections", KindCounter},
	{"paused_background_compaction_input_bytes_added", "bytes", KindGauge},
	{"paused_background_compaction_input_bytes_removed", "bytes", KindGauge},
	{"paused_background_compaction_input_files_added", "files", KindGauge},
	{"paused_background_compaction_input_files_removed", "files", KindGauge},
	{"paused_background_compaction_tasks_added", "tasks", KindGauge},
	{"paused_background_compaction_tasks_removed", "tasks", KindGauge},
	{"paused_full_compaction_input_bytes_added", "bytes", KindGauge},
	{"paused_full_compaction_input_bytes_removed", "bytes", KindGauge},
	{"paused_full_compaction_input_files_added", "files", KindGauge},
	{"paused_full_compaction_input_files_removed", "files", KindGauge},
	{"paused_full_compaction_tasks_added", "tasks", KindGauge},
	{"paused_full_compaction_tasks_removed", "tasks", KindGauge},
	{"paused_post_split_compaction_input_bytes_added", "bytes", KindGauge},
	{"paused_post_split_compaction_input_bytes_removed", "bytes", KindGauge},
	{"paused_post_split_compaction_input_files_added", "files", KindGauge},
	{"paused_post_split_compaction_input_files_removed", "files", KindGauge},
	{"paused_post_split_compaction_tasks_added", "tasks", KindGauge},
	{"paused_post_split_compaction_tasks_removed", "tasks", KindGauge},
	{"paused_task_metrics_compaction_input_bytes_added", "bytes", KindGauge},
	{"paused_task_metrics_compaction_input_bytes_removed", "bytes", KindGauge},
	{"paused_task_metrics_compaction_input_files_added", "files", KindGauge},
	{"paused_task_metrics_compaction_input_files_removed", "files", KindGauge},
	{"paused_task_metrics_compaction_tasks_added", "tasks", KindGauge},
	{"paused_task_metrics_compaction_tasks_removed", "tasks", KindGauge},
	{"pg_response_cache_hits", "hits", KindCounter},
	{"pg_response_cache_queries", "hits", KindCounter},
	{"pgsql_consistent_prefix_read_rows", "rows", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_ChangeConfig", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_GetConsensusState", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_GetLastOpId", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_GetNodeInstance", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_LeaderElectionLost", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_LeaderStepDown", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_MultiRaftUpdateConsensus", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_RequestConsensusVote", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_RunLeaderElection", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_StartRemoteBootstrap", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_UnsafeChangeConfig", "bytes", KindCounter},
	{"proxy_request_bytes_yb_consensus_ConsensusService_UpdateConsensus", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_AddTransactionStatusTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_CheckIfPitrActive", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_CompactSysCatalog", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_CreateTransactionStatusTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_DdlLog", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_DeleteNotServingTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_DisableTabletSplitting", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_FlushSysCatalog", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_FlushTables", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_IsFlushTablesDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_IsInitDbDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_IsTabletSplittingComplete", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterAdmin_SplitTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterClient_GetTableLocations", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterClient_GetTabletLocations", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterClient_GetTransactionStatusTablets", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterClient_GetYsqlCatalogConfig", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterClient_RedisConfigGet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterClient_RedisConfigSet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterClient_ReservePgsqlOids", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_AreLeadersOnPreferredOnly", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_ChangeLoadBalancerState", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_ChangeMasterClusterConfig", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_DumpState", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_GetAutoFlagsConfig", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_GetLeaderBlacklistCompletion", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_GetLoadBalancerState", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_GetLoadMoveCompletion", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_GetMasterClusterConfig", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_GetMasterRegistration", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_IsLoadBalanced", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_IsLoadBalancerIdle", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_IsMasterLeaderServiceReady", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_ListLiveTabletServers", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_ListMasterRaftPeers", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_ListMasters", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_ListTabletServers", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_PromoteAutoFlags", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_RemovedMasterUpdate", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterCluster_SetPreferredZones", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDcl_AlterRole", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDcl_CreateRole", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDcl_DeleteRole", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDcl_GetPermissions", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDcl_GrantRevokePermission", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDcl_GrantRevokeRole", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_AlterNamespace", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_AlterTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_BackfillIndex", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_CreateNamespace", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_CreateTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_CreateTablegroup", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_CreateUDType", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_DeleteNamespace", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_DeleteTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_DeleteTablegroup", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_DeleteUDType", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_GetBackfillJobs", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_GetColocatedTabletSchema", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_GetNamespaceInfo", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_GetTableDiskSize", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_GetTableSchema", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_GetTablegroupSchema", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_GetUDTypeInfo", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_IsAlterTableDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_IsCreateNamespaceDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_IsCreateTableDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_IsDeleteNamespaceDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_IsDeleteTableDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_IsTruncateTableDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_LaunchBackfillIndexForTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_ListNamespaces", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_ListTablegroups", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_ListTables", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_ListUDTypes", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterDdl_TruncateTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterEncryption_AddUniverseKeys", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterEncryption_ChangeEncryptionInfo", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterEncryption_GetUniverseKeyRegistry", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterEncryption_HasUniverseKeyInMemory", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterEncryption_IsEncryptionEnabled", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterHeartbeat_TSHeartbeat", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_AlterUniverseReplication", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_ChangeXClusterRole", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_CreateCDCStream", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_DeleteCDCStream", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_DeleteUniverseReplication", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_GetCDCDBStreamInfo", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_GetCDCStream", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_GetReplicationStatus", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_GetTableSchemaFromSysCatalog", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_GetUDTypeMetadata", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_GetUniverseReplication", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_GetXClusterEstimatedDataLoss", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_GetXClusterSafeTime", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_IsBootstrapRequired", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_IsSetupUniverseReplicationDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_ListCDCStreams", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_SetUniverseReplicationEnabled", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_SetupNSUniverseReplication", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_SetupUniverseReplication", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_UpdateCDCStream", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_UpdateConsumerOnProducerMetadata", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_UpdateConsumerOnProducerSplit", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_ValidateReplicationInfo", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterReplication_WaitForReplicationDrain", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_AddUniverseKeys", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_AlterNamespace", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_AlterRole", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_AlterTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_AlterUniverseReplication", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_AreLoadersOnPreferredOnly", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_BackfillIndex", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ChangeEncryptionInfo", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ChangeLoadBalancerState", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ChangeMasterClusterConfig", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_CreateCDCStream", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_CreateNamespace", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_CreateRole", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_CreateTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_CreateTablegroup", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_CreateTransactionStatusTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_CreateUDType", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_DdlLog", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_DeleteCDCStream", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_DeleteNamespace", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_DeleteNotServingTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_DeleteRole", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_DeleteTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_DeleteTablegroup", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_DeleteUDType", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_DeleteUniverseReplication", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_DumpState", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_FlushTables", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetBackfillJobs", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetCDCStream", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetColocatedTabletSchema", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetLeaderBlacklistCompletion", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetLoadBalancerState", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetLoadMoveCompletion", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetMasterClusterConfig", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetMasterRegistration", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetNamespaceInfo", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetPermissions", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetTableLocations", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetTableSchema", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetTabletLocations", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetUDTypeInfo", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetUniverseKeyRegistry", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetUniverseReplication", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GetYsqlCatalogConfig", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GrantRevokePermission", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_GrantRevokeRole", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_HasUniverseKeyInMemory", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsAlterTableDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsCreateNamespaceDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsCreateTableDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsDeleteNamespaceDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsDeleteTableDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsEncryptionEnabled", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsFlushTablesDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsInitDbDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsLoadBalanced", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsLoadBalancerIdle", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsMasterLeaderServiceReady", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsSetupUniverseReplicationDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_IsTruncateTableDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_LaunchBackfillIndexForTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ListCDCStreams", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ListLiveTabletServers", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ListMasterRaftPeers", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ListMasters", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ListNamespace", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ListTablegroups", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ListTables", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ListTabletServers", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ListUDTypes", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_RedisConfigGet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_RedisConfigSet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_RemoveMasterUpdate", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_ReservePgsqlOids", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_SetPreferredZone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_SetUniverseReplication", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_SetupUniverseReplication", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_SplitTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_TSHeartbeat", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_TruncateTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_master_MasterService_UpdateCDCStream", "bytes", KindCounter},
	{"proxy_request_bytes_yb_server_GenericService_FlushCoverage", "bytes", KindCounter},
	{"proxy_request_bytes_yb_server_GenericService_GetAutoFlagsConfigVersion", "bytes", KindCounter},
	{"proxy_request_bytes_yb_server_GenericService_GetFlag", "bytes", KindCounter},
	{"proxy_request_bytes_yb_server_GenericService_GetStatus", "bytes", KindCounter},
	{"proxy_request_bytes_yb_server_GenericService_Ping", "bytes", KindCounter},
	{"proxy_request_bytes_yb_server_GenericService_RefreshFlags", "bytes", KindCounter},
	{"proxy_request_bytes_yb_server_GenericService_ReloadCertificates", "bytes", KindCounter},
	{"proxy_request_bytes_yb_server_GenericService_ServerClock", "bytes", KindCounter},
	{"proxy_request_bytes_yb_server_GenericService_SetFlag", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_BeginRemoteBootstrapSession", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_ChangePeerRole", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_CheckRemoteBootstrapSessionActive", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_EndRemoteBootstrapSession", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_FetchData", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_KeepLogAnchorAlive", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_RegisterLogAnchor", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_RemoveRemoteBootstrapSession", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_RemoveSession", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_UnregisterLogAnchor", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_RemoteBootstrapService_UpdateLogAnchor", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_AddTableToTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_AlterSchema", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_BackfillDone", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_BackfillIndex", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_CopartitionTable", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_CountIntents", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_CreateTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_DeleteTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_FlushTablets", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_GetSafeTime", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_PrepareDeleteTransactionTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_RemoveTableFromTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_SplitTablet", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_TestRetry", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_UpdateTransactionTablesVersion", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerAdminService_UpgradeYsql", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerBackupService_TabletSnapshotOp", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_AbortTransaction", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_Checksum", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_GetLogLocation", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_GetMasterAddresses", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_GetSharedData", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_GetSplitKey", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_GetTabletStatus", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_GetTransactionStatus", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_GetTransactionStatusAtParticipant", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_GetTserverCatalogVersionInfo", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_ImportData", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_IsTabletServerReady", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_ListMasterServers", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_ListTablets", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_ListTabletsForTabletServer", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_NoOp", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_ProbeTransactionDeadlock", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_Publish", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_Read", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_TakeTransaction", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_Truncate", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_UpdateTransaction", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_UpdateTransactionStatusLocation", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_UpdateTransactionWaitingForStatus", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_VerifyTableRowRange", "bytes", KindCounter},
	{"proxy_request_bytes_yb_tserver_TabletServerService_Write", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_ChangeConfig", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_GetConsensusState", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_GetLastOpId", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_GetNodeInstance", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_LeaderElectionLost", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_LeaderStepDown", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_MultiRaftUpdateConsensus", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_RequestConsensusVote", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_RunLeaderElection", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_StartRemoteBootstrap", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_UnsafeChangeConfig", "bytes", KindCounter},
	{"proxy_response_bytes_yb_consensus_ConsensusService_UpdateConsensus", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_AddTransactionStatusTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_CheckIfPitrActive", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_CompactSysCatalog", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_CreateTransactionStatusTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_DdlLog", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_DeleteNotServingTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_DisableTabletSplitting", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_FlushSysCatalog", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_FlushTables", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_IsFlushTablesDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_IsInitDbDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_IsTabletSplittingComplete", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterAdmin_SplitTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterClient_GetTableLocations", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterClient_GetTabletLocations", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterClient_GetTransactionStatusTablets", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterClient_GetYsqlCatalogConfig", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterClient_RedisConfigGet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterClient_RedisConfigSet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterClient_ReservePgsqlOids", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_AreLeadersOnPreferredOnly", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_ChangeLoadBalancerState", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_ChangeMasterClusterConfig", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_DumpState", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_GetAutoFlagsConfig", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_GetLeaderBlacklistCompletion", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_GetLoadBalancerState", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_GetLoadMoveCompletion", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_GetMasterClusterConfig", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_GetMasterRegistration", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_IsLoadBalanced", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_IsLoadBalancerIdle", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_IsMasterLeaderServiceReady", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_ListLiveTabletServers", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_ListMasterRaftPeers", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_ListMasters", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_ListTabletServers", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_PromoteAutoFlags", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_RemovedMasterUpdate", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterCluster_SetPreferredZones", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDcl_AlterRole", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDcl_CreateRole", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDcl_DeleteRole", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDcl_GetPermissions", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDcl_GrantRevokePermission", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDcl_GrantRevokeRole", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_AlterNamespace", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_AlterTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_BackfillIndex", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_CreateNamespace", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_CreateTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_CreateTablegroup", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_CreateUDType", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_DeleteNamespace", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_DeleteTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_DeleteTablegroup", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_DeleteUDType", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_GetBackfillJobs", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_GetColocatedTabletSchema", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_GetNamespaceInfo", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_GetTableDiskSize", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_GetTableSchema", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_GetTablegroupSchema", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_GetUDTypeInfo", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_IsAlterTableDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_IsCreateNamespaceDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_IsCreateTableDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_IsDeleteNamespaceDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_IsDeleteTableDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_IsTruncateTableDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_LaunchBackfillIndexForTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_ListNamespaces", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_ListTablegroups", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_ListTables", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_ListUDTypes", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterDdl_TruncateTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterEncryption_AddUniverseKeys", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterEncryption_ChangeEncryptionInfo", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterEncryption_GetUniverseKeyRegistry", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterEncryption_HasUniverseKeyInMemory", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterEncryption_IsEncryptionEnabled", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterHeartbeat_TSHeartbeat", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_AlterUniverseReplication", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_ChangeXClusterRole", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_CreateCDCStream", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_DeleteCDCStream", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_DeleteUniverseReplication", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_GetCDCDBStreamInfo", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_GetCDCStream", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_GetReplicationStatus", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_GetTableSchemaFromSysCatalog", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_GetUDTypeMetadata", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_GetUniverseReplication", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_GetXClusterEstimatedDataLoss", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_GetXClusterSafeTime", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_IsBootstrapRequired", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_IsSetupUniverseReplicationDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_ListCDCStreams", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_SetUniverseReplicationEnabled", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_SetupNSUniverseReplication", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_SetupUniverseReplication", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_UpdateCDCStream", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_UpdateConsumerOnProducerMetadata", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_UpdateConsumerOnProducerSplit", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_ValidateReplicationInfo", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterReplication_WaitForReplicationDrain", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_AddUniverseKeys", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_AlterNamespace", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_AlterRole", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_AlterTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_AlterUniverseReplication", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_AreLoadersOnPreferredOnly", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_BackfillIndex", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ChangeEncryptionInfo", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ChangeLoadBalancerState", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ChangeMasterClusterConfig", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_CreateCDCStream", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_CreateNamespace", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_CreateRole", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_CreateTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_CreateTablegroup", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_CreateTransactionStatusTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_CreateUDType", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_DdlLog", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_DeleteCDCStream", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_DeleteNamespace", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_DeleteNotServingTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_DeleteRole", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_DeleteTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_DeleteTablegroup", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_DeleteUDType", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_DeleteUniverseReplication", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_DumpState", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_FlushTables", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetBackfillJobs", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetCDCStream", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetColocatedTabletSchema", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetLeaderBlacklistCompletion", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetLoadBalancerState", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetLoadMoveCompletion", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetMasterClusterConfig", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetMasterRegistration", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetNamespaceInfo", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetPermissions", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetTableLocations", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetTableSchema", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetTabletLocations", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetUDTypeInfo", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetUniverseKeyRegistry", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetUniverseReplication", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GetYsqlCatalogConfig", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GrantRevokePermission", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_GrantRevokeRole", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_HasUniverseKeyInMemory", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsAlterTableDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsCreateNamespaceDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsCreateTableDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsDeleteNamespaceDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsDeleteTableDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsEncryptionEnabled", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsFlushTablesDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsInitDbDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsLoadBalanced", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsLoadBalancerIdle", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsMasterLeaderServiceReady", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsSetupUniverseReplicationDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_IsTruncateTableDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_LaunchBackfillIndexForTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ListCDCStreams", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ListLiveTabletServers", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ListMasterRaftPeers", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ListMasters", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ListNamespace", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ListTablegroups", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ListTables", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ListTabletServers", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ListUDTypes", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_RedisConfigGet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_RedisConfigSet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_RemoveMasterUpdate", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_ReservePgsqlOids", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_SetPreferredZone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_SetUniverseReplication", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_SetupUniverseReplication", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_SplitTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_TSHeartbeat", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_TruncateTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_master_MasterService_UpdateCDCStream", "bytes", KindCounter},
	{"proxy_response_bytes_yb_server_GenericService_FlushCoverage", "bytes", KindCounter},
	{"proxy_response_bytes_yb_server_GenericService_GetAutoFlagsConfigVersion", "bytes", KindCounter},
	{"proxy_response_bytes_yb_server_GenericService_GetFlag", "bytes", KindCounter},
	{"proxy_response_bytes_yb_server_GenericService_GetStatus", "bytes", KindCounter},
	{"proxy_response_bytes_yb_server_GenericService_Ping", "bytes", KindCounter},
	{"proxy_response_bytes_yb_server_GenericService_RefreshFlags", "bytes", KindCounter},
	{"proxy_response_bytes_yb_server_GenericService_ReloadCertificates", "bytes", KindCounter},
	{"proxy_response_bytes_yb_server_GenericService_ServerClock", "bytes", KindCounter},
	{"proxy_response_bytes_yb_server_GenericService_SetFlag", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_RemoteBootstrapService_BeginRemoteBootstrapSession", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_RemoteBootstrapService_ChangePeerRole", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_RemoteBootstrapService_CheckRemoteBootstrapSessionActive", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_RemoteBootstrapService_EndRemoteBootstrapSession", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_RemoteBootstrapService_FetchData", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_RemoteBootstrapService_KeepLogAnchorAlive", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_RemoteBootstrapService_RegisterLogAnchor", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_RemoteBootstrapService_RemoveRemoteBootstrapSession", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_RemoteBootstrapService_UnregisterLogAnchor", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_RemoteBootstrapService_UpdateLogAnchor", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_AddTableToTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_AlterSchema", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_BackfillDone", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_BackfillIndex", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_CopartitionTable", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_CountIntents", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_CreateTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_DeleteTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_FlushTablets", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_GetSafeTime", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_PrepareDeleteTransactionTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_RemoveTableFromTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_SplitTablet", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_TestRetry", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_UpdateTransactionTablesVersion", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerAdminService_UpgradeYsql", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerBackupService_TabletSnapshotOp", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_AbortTransaction", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_Checksum", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_GetLogLocation", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_GetMasterAddresses", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_GetSharedData", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_GetSplitKey", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_GetTabletStatus", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_GetTransactionStatus", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_GetTransactionStatusAtParticipant", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_GetTserverCatalogVersionInfo", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_ImportData", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_IsTabletServerReady", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_ListMasterServers", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_ListTablets", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_ListTabletsForTabletServer", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_NoOp", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_ProbeTransactionDeadlock", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_Publish", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_Read", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_TakeTransaction", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_Truncate", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_UpdateTransaction", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_UpdateTransactionStatusLocation", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_UpdateTransactionWaitingForStatus", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_VerifyTableRowRange", "bytes", KindCounter},
	{"proxy_response_bytes_yb_tserver_TabletServerService_Write", "bytes", KindCounter},
	{"queued_background_compaction_input_bytes_added", "bytes", KindGauge},
	{"queued_background_compaction_input_bytes_removed", "bytes", KindGauge},
	{"queued_background_compaction_input_files_added", "files", KindGauge},
	{"queued_background_compaction_input_files_removed", "files", KindGauge},
	{"queued_background_compaction_tasks_added", "tasks", KindGauge},
	{"queued_background_compaction_tasks_removed", "tasks", KindGauge},
	{"queued_full_compaction_input_bytes_added", "bytes", KindGauge},
	{"queued_full_compaction_input_bytes_removed", "bytes", KindGauge},
	{"queued_full_compaction_input_files_added", "files", KindGauge},
	{"queued_full_compaction_input_files_removed", "files", KindGauge},
	{"queued_full_compaction_tasks_added", "tasks", KindGauge},
	{"queued_full_compaction_tasks_removed", "tasks", KindGauge},
	{"queued_post_split_compaction_input_bytes_added", "bytes", KindGauge},
	{"queued_post_split_compaction_input_bytes_removed", "bytes", KindGauge},
	{"queued_post_split_compaction_input_files_added", "files", KindGauge},
	{"queued_post_split_compaction_input_files_removed", "files", KindGauge},
	{"queued_post_split_compaction_tasks_added", "tasks", KindGauge},
	{"queued_post_split_compaction_tasks_removed", "tasks", KindGauge},
	{"queued_task_metrics_compaction_input_bytes_added", "bytes", KindGauge},
	{"queued_task_metrics_compaction_input_bytes_removed", "bytes", KindGauge},
	{"queued_task_metrics_compaction_input_files_added", "files", KindGauge},
	{"queued_task_metrics_compaction_input_files_removed", "files", KindGauge},
	{"queued_task_metrics_compaction_tasks_added", "tasks", KindGauge},
	{"queued_task_metrics_compaction_tasks_removed", "tasks", KindGauge},
	{"raft_term", "current consensus term", KindGauge},
	{"replicated_retryable_request_ranges", "requests", KindGauge},
	{"restart_read_requests", "requests", KindCounter},
	{"rocksdb_block_cache_add", "blocks", KindCounter},
	{"rocksdb_block_cache_add_failures", "blocks", KindCounter},
	{"rocksdb_block_cache_bytes_read", "bytes", KindCounter},
	{"rocksdb_block_cache_bytes_write", "bytes", KindCounter},
	{"rocksdb_block_cache_data_hit", "blocks", KindCounter},
	{"rocksdb_block_cache_data_miss", "blocks", KindCounter},
	{"rocksdb_block_cache_filter_hit", "blocks", KindCounter},
	{"rocksdb_block_cache_filter_miss", "blocks", KindCounter},
	{"rocksdb_block_cache_hit", "blocks", KindCounter},
	{"rocksdb_block_cache_index_hit", "blocks", KindCounter},
	{"rocksdb_block_cache_index_miss", "blocks", KindCounter},
	{"rocksdb_block_cache_miss", "blocks", KindCounter},
	{"rocksdb_block_cache_multi_touch_add", "blocks", KindCounter},
	{"rocksdb_block_cache_multi_touch_bytes_read", "bytes", KindCounter},
	{"rocksdb_block_cache_multi_touch_bytes_write", "bytes", KindCounter},
	{"rocksdb_block_cache_multi_touch_hit", "blocks", KindCounter},
	{"rocksdb_block_cache_single_touch_add", "blocks", KindCounter},
	{"rocksdb_block_cache_single_touch_bytes_read", "bytes", KindCounter},
	{"rocksdb_block_cache_single_touch_bytes_write", "bytes", KindCounter},
	{"rocksdb_block_cache_single_touch_hit", "blocks", KindCounter},
	{"rocksdb_block_cachecompressed_add", "blocks", KindCounter},
	{"rocksdb_block_cachecompressed_add_failures", "blocks", KindCounter},
	{"rocksdb_block_cachecompressed_hit", "blocks", KindCounter},
	{"rocksdb_block_cachecompressed_miss", "blocks", KindCounter},
	{"rocksdb_bloom_filter_checked", "blocks", KindCounter},
	{"rocksdb_bloom_filter_prefix_checked", "blocks", KindCounter},
	{"rocksdb_bloom_filter_prefix_useful", "blocks", KindCounter},
	{"rocksdb_bloom_filter_useful", "blocks", KindCounter},
	{"rocksdb_bytes_read", "bytes", KindCounter},
	{"rocksdb_bytes_written", "bytes", KindCounter},
	{"rocksdb_compact_read_bytes", "bytes", KindCounter},
	{"rocksdb_compact_write_bytes", "bytes", KindCounter},
	{"rocksdb_compaction_files_filtered", "files", KindCounter},
	{"rocksdb_compaction_files_not_filtered", "files", KindCounter},
	{"rocksdb_compaction_key_drop_new", "keys", KindCounter},
	{"rocksdb_compaction_key_drop_obsolete", "keys", KindCounter},
	{"rocksdb_compaction_key_drop_user", "keys", KindCounter},
	{"rocksdb_current_version_num_sst_files", "files", KindGauge},
	{"rocksdb_current_version_sst_files_size", "bytes", KindGauge},
	{"rocksdb_current_version_sst_files_uncompressed_size", "bytes", KindGauge},
	{"rocksdb_db_iter_bytes_read", "bytes", KindCounter},
	{"rocksdb_db_mutex_wait_micros", "microseconds", KindCounter},
	{"rocksdb_filter_operation_time_nanos", "nanoseconds", KindCounter},
	{"rocksdb_flush_write_bytes", "bytes", KindCounter},
	{"rocksdb_getupdatessince_calls", "calls", KindCounter},
	{"rocksdb_l0_hit", "keys", KindCounter},
	{"rocksdb_l0_num_files_stall_micros", "microseconds", KindCounter},
	{"rocksdb_l0_slowdown_micros", "microseconds", KindCounter},
	{"rocksdb_l1_hit", "keys", KindCounter},
	{"rocksdb_l2andup_hit", "keys", KindCounter},
	{"rocksdb_memtable_compaction_micros", "microseconds", KindCounter},
	{"rocksdb_memtable_hit", "keys", KindCounter},
	{"rocksdb_memtable_miss", "keys", KindCounter},
	{"rocksdb_merge_operation_time_nanos", "nanoseconds", KindCounter},
	{"rocksdb_no_file_closes", "files", KindCounter},
	{"rocksdb_no_file_errors", "files", KindCounter},
	{"rocksdb_no_file_opens", "files", KindCounter},
	{"rocksdb_no_table_cache_iterators", "iterators", KindCounter},
	{"rocksdb_num_iterators", "iterators", KindCounter},
	{"rocksdb_number_block_not_compressed", "blocks", KindCounter},
	{"rocksdb_number_db_next", "keys", KindCounter},
	{"rocksdb_number_db_next_found", "keys", KindCounter},
	{"rocksdb_number_db_prev", "keys", KindCounter},
	{"rocksdb_number_db_prev_found", "keys", KindCounter},
	{"rocksdb_number_db_seek", "keys", KindCounter},
	{"rocksdb_number_db_seek_found", "keys", KindCounter},
	{"rocksdb_number_deletes_filtered", "deletes", KindCounter},
	{"rocksdb_number_direct_load_table_properties", "properties", KindCounter},
	{"rocksdb_number_keys_read", "keys", KindCounter},
	{"rocksdb_number_keys_updated", "keys", KindCounter},
	{"rocksdb_number_keys_written", "keys", KindCounter},
	{"rocksdb_number_merge_failures", "failures", KindCounter},
	{"rocksdb_number_multiget_bytes_read", "bytes", KindCounter},
	{"rocksdb_number_multiget_get", "calls", KindCounter},
	{"rocksdb_number_multiget_keys_read", "keys", KindCounter},
	{"rocksdb_number_reseeks_iteration", "seeks", KindCounter},
	{"rocksdb_number_superversion_acquires", "nr", KindCounter},
	{"rocksdb_number_superversion_cleanups", "nr", KindCounter},
	{"rocksdb_number_superversion_releases", "nr", KindCounter},
	{"rocksdb_rate_limit_delay_millis", "milliseconds", KindCounter},
	{"rocksdb_row_cache_hit", "rows", KindCounter},
	{"rocksdb_row_cache_miss", "rows", KindCounter},
	{"rocksdb_sequence_number", "rows", KindCounter},
	{"rocksdb_stall_micros", "microseconds", KindCounter},
	{"rocksdb_total_sst_files_size", "bytes", KindGauge},
	{"rocksdb_wal_bytes", "bytes", KindCounter},
	{"rocksdb_wal_synced", "syncs", KindCounter},
	{"rocksdb_write_other", "writes", KindCounter},
	{"rocksdb_write_self", "writes", KindCounter},
	{"rocksdb_write_wal", "writes", KindCounter},
	{"rows_inserted", "rows", KindCounter},
	{"rpc_connections_accepted", "connections", KindCounter},
	{"rpc_connections_alive", "connections", KindGauge},
	{"rpc_connections_created", "connections", KindCounter},
	{"rpc_inbound_calls_alive", "requests", KindGauge},
	{"rpc_inbound_calls_created", "requests", KindCounter},
	{"rpc_outbound_calls_alive", "requests", KindGauge},
	{"rpc_outbound_calls_created", "requests", KindCounter},
	{"rpc_timed_out_early_in_queue", "requests", KindCounter},
	{"rpc_timed_out_in_queue", "requests", KindCounter},
	{"rpcs_in_queue_yb_cdc_CDCService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_consensus_ConsensusService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_cqlserver_CQLServerService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_master_MasterBackup", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_master_MasterBackupService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_master_MasterService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_server_GenericService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_tserver_GenericService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_tserver_PgClientService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_tserver_RemoteBootstrapService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_tserver_TabletServerAdminService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_tserver_TabletServerBackupService", "rpcs", KindGauge},
	{"rpcs_in_queue_yb_tserver_TabletServerService", "rpcs", KindGauge},
	{"rpcs_queue_overflow", "requests", KindCounter},
	{"rpcs_timed_out_early_in_queue", "requests", KindCounter},
	{"rpcs_timed_out_in_queue", "requests", KindCounter},
	{"running_retryable_requests", "requests", KindGauge},
	{"server_uptime_ms", "milliseconds", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_BootstrapProducer", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_CheckReplicationDrain", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_CreateCDCStream", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_DeleteCDCStream", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_GetCDCDBStreamInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_GetChanges", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_GetCheckpoint", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_GetLatestEntryOpId", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_GetTabletListToPollForCDC", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_IsBootstrapRequired", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_ListTablets", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_SetCDCCheckpoint", "bytes", KindCounter},
	{"service_request_bytes_yb_cdc_CDCService_UpdateCdcReplicatedIndex", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_ChangeConfig", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_GetConsensusState", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_GetLastOpId", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_GetNodeInstance", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_LeaderElectionLost", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_LeaderStepDown", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_MultiRaftUpdateConsensus", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_RequestConsensusVote", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_RunLeaderElection", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_StartRemoteBootstrap", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_UnsafeChangeConfig", "bytes", KindCounter},
	{"service_request_bytes_yb_consensus_ConsensusService_UpdateConsensus", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_AddTransactionStatusTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_CheckIfPitrActive", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_CompactSysCatalog", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_CreateTransactionStatusTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_DdlLog", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_DeleteNotServingTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_DisableTabletSplitting", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_FlushSysCatalog", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_FlushTables", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_IsFlushTablesDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_IsInitDbDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_IsTabletSplittingComplete", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterAdmin_SplitTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackupService_CreateSnapshot", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackupService_CreateSnapshotSchedule", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackupService_DeleteSnapshot", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackupService_DeleteSnapshotSchedule", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackupService_ImportSnapshotMeta", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackupService_ListSnapshotRestorations", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackupService_ListSnapshotSchedules", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackupService_ListSnapshots", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackupService_RestoreSnapshot", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_CreateSnapshot", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_CreateSnapshotSchedule", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_DeleteSnapshot", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_DeleteSnapshotSchedule", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_EditSnapshotSchedule", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_ImportSnapshotMeta", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_ListSnapshotRestorations", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_ListSnapshotSchedules", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_ListSnapshots", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_RestoreSnapshot", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterBackup_RestoreSnapshotSchedule", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterClient_GetTableLocations", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterClient_GetTabletLocations", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterClient_GetTransactionStatusTablets", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterClient_GetYsqlCatalogConfig", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterClient_RedisConfigGet", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterClient_RedisConfigSet", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterClient_ReservePgsqlOids", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_AreLeadersOnPreferredOnly", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_ChangeLoadBalancerState", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_ChangeMasterClusterConfig", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_DumpState", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_GetAutoFlagsConfig", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_GetLeaderBlacklistCompletion", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_GetLoadBalancerState", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_GetLoadMoveCompletion", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_GetMasterClusterConfig", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_GetMasterRegistration", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_IsLoadBalanced", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_IsLoadBalancerIdle", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_IsMasterLeaderServiceReady", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_ListLiveTabletServers", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_ListMasterRaftPeers", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_ListMasters", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_ListTabletServers", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_PromoteAutoFlags", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_RemovedMasterUpdate", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterCluster_SetPreferredZones", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDcl_AlterRole", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDcl_CreateRole", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDcl_DeleteRole", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDcl_GetPermissions", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDcl_GrantRevokePermission", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDcl_GrantRevokeRole", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_AlterNamespace", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_AlterTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_BackfillIndex", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_CreateNamespace", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_CreateTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_CreateTablegroup", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_CreateUDType", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_DeleteNamespace", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_DeleteTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_DeleteTablegroup", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_DeleteUDType", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_GetBackfillJobs", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_GetColocatedTabletSchema", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_GetNamespaceInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_GetTableDiskSize", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_GetTableSchema", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_GetTablegroupSchema", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_GetUDTypeInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_IsAlterTableDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_IsCreateNamespaceDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_IsCreateTableDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_IsDeleteNamespaceDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_IsDeleteTableDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_IsTruncateTableDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_LaunchBackfillIndexForTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_ListNamespaces", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_ListTablegroups", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_ListTables", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_ListUDTypes", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterDdl_TruncateTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterEncryption_AddUniverseKeys", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterEncryption_ChangeEncryptionInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterEncryption_GetUniverseKeyRegistry", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterEncryption_HasUniverseKeyInMemory", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterEncryption_IsEncryptionEnabled", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterHeartbeat_TSHeartbeat", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_AlterUniverseReplication", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_ChangeXClusterRole", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_CreateCDCStream", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_DeleteCDCStream", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_DeleteUniverseReplication", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_GetCDCDBStreamInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_GetCDCStream", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_GetReplicationStatus", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_GetTableSchemaFromSysCatalog", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_GetUDTypeMetadata", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_GetUniverseReplication", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_GetXClusterEstimatedDataLoss", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_GetXClusterSafeTime", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_IsBootstrapRequired", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_IsSetupUniverseReplicationDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_ListCDCStreams", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_SetUniverseReplicationEnabled", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_SetupNSUniverseReplication", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_SetupUniverseReplication", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_UpdateCDCStream", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_UpdateConsumerOnProducerMetadata", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_UpdateConsumerOnProducerSplit", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_ValidateReplicationInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterReplication_WaitForReplicationDrain", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_AddUniverseKeys", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_AlterNamespace", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_AlterRole", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_AlterTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_AlterUniverseReplication", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_AreLoadersOnPreferredOnly", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_BackfillIndex", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ChangeEncryptionInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ChangeLoadBalancerState", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ChangeMasterClusterConfig", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_CreateCDCStream", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_CreateNamespace", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_CreateRole", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_CreateTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_CreateTablegroup", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_CreateTransactionStatusTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_CreateUDType", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_DdlLog", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_DeleteCDCStream", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_DeleteNamespace", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_DeleteNotServingTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_DeleteRole", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_DeleteTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_DeleteTablegroup", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_DeleteUDType", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_DeleteUniverseReplication", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_DumpState", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_FlushTables", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetBackfillJobs", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetCDCStream", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetColocatedTabletSchema", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetLeaderBlacklistCompletion", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetLoadBalancerState", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetLoadMoveCompletion", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetMasterClusterConfig", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetMasterRegistration", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetNamespaceInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetPermissions", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetTableLocations", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetTableSchema", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetTabletLocations", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetUDTypeInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetUniverseKeyRegistry", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetUniverseReplication", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GetYsqlCatalogConfig", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GrantRevokePermission", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_GrantRevokeRole", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_HasUniverseKeyInMemory", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsAlterTableDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsCreateNamespaceDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsCreateTableDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsDeleteNamespaceDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsDeleteTableDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsEncryptionEnabled", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsFlushTablesDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsInitDbDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsLoadBalanced", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsLoadBalancerIdle", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsMasterLeaderServiceReady", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_IsSetupUniverseReplicationDone", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_LaunchBackfillIndexForTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ListCDCStreams", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ListLiveTabletServers", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ListMasterRaftPeers", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ListMasters", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ListNamespaces", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ListTablegroups", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ListTables", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ListTabletServers", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ListUDType", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_RedisConfigGet", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_RedisConfigSet", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_RemovedMasterUpdate", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_ReservePgsqlOids", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_SetPreferredZones", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_SetUniverseReplication", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_SetupUniverseReplication", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_SplitTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_TSHeartbeat", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_TruncateTable", "bytes", KindCounter},
	{"service_request_bytes_yb_master_MasterService_UpdateCDCStream", "bytes", KindCounter},
	{"service_request_bytes_yb_server_GenericService_FlushCoverage", "bytes", KindCounter},
	{"service_request_bytes_yb_server_GenericService_GetAutoFlagsConfigVersion", "bytes", KindCounter},
	{"service_request_bytes_yb_server_GenericService_GetFlag", "bytes", KindCounter},
	{"service_request_bytes_yb_server_GenericService_GetStatus", "bytes", KindCounter},
	{"service_request_bytes_yb_server_GenericService_Ping", "bytes", KindCounter},
	{"service_request_bytes_yb_server_GenericService_RefreshFlags", "bytes", KindCounter},
	{"service_request_bytes_yb_server_GenericService_ReloadCertificates", "bytes", KindCounter},
	{"service_request_bytes_yb_server_GenericService_ServerClock", "bytes", KindCounter},
	{"service_request_bytes_yb_server_GenericService_SetFlag", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_AlterDatabase", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_AlterTable", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_BackfillIndex", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_CheckIfPitrActive", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_CreateDatabase", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_CreateSequencesDataTable", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_CreateTable", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_CreateTablegroup", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_DeleteDBSequences", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_DeleteSequenceTuple", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_DropDatabase", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_DropTable", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_DropTablegroup", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_FinishTransaction", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_GetCatalogMasterVersion", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_GetDatabaseInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_GetTableDiskSize", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_GetTserverCatalogVersionInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_Heartbeat", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_InsertSequenceTuple", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_IsInitDbDone", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_ListLiveTabletServers", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_OpenTable", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_Perform", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_ReadSequenceTuple", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_ReserveOids", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_RollbackToSubTransaction", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_SetActiveSubTransaction", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_TabletServerCount", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_TruncateTable", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_UpdateSequenceTuple", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_PgClientService_ValidatePlacement", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_BeginRemoteBootstrapSession", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_ChangePeerRole", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_CheckRemoteBootstrapSessionActive", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_CheckSessionActive", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_EndRemoteBootstrapSession", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_FetchData", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_KeepLogAnchorAlive", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_RegisterLogAnchor", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_RemoveRemoteBootstrapSession", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_RemoveSession", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_UnregisterLogAnchor", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_RemoteBootstrapService_UpdateLogAnchor", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_AddTableToTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_AlterSchema", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_BackfillDone", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_BackfillIndex", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_CopartitionTable", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_CountIntents", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_CreateTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_DeleteTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_FlushTablets", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_GetSafeTime", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_PrepareDeleteTransactionTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_RemoveTableFromTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_SplitTablet", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_TabletSnapshotOp", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_TestRetry", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_UpdateConsensus", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_UpdateTransactionTablesVersion", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerAdminService_UpgradeYsql", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerBackupService_TabletSnapshotOp", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_AbortTransaction", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_Checksum", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_GetLogLocation", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_GetMasterAddresses", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_GetSharedData", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_GetSplitKey", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_GetTabletStatus", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_GetTransactionStatus", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_GetTransactionStatusAtParticipant", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_GetTserverCatalogVersionInfo", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_ImportData", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_IsTabletServerReady", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_ListMasterServers", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_ListTablets", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_ListTabletsForTabletServer", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_NoOp", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_ProbeTransactionDeadlock", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_Publish", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_Read", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_TakeTransaction", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_Truncate", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_UpdateTransaction", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_UpdateTransactionStatusLocation", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_UpdateTransactionWaitingForStatus", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_VerifyTableRowRange", "bytes", KindCounter},
	{"service_request_bytes_yb_tserver_TabletServerService_Write", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_BootstrapProducer", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_CheckReplicationDrain", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_CreateCDCStream", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_DeleteCDCStream", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_GetCDCDBStreamInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_GetChanges", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_GetCheckpoint", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_GetLatestEntryOpId", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_GetTabletListToPollForCDC", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_IsBootstrapRequired", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_ListTablets", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_SetCDCCheckpoint", "bytes", KindCounter},
	{"service_response_bytes_yb_cdc_CDCService_UpdateCdcReplicatedIndex", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_ChangeConfig", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_GetConsensusState", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_GetLastOpId", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_GetNodeInstance", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_LeaderElectionLost", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_LeaderStepDown", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_MultiRaftUpdateConsensus", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_RequestConsensusVote", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_RunLeaderElection", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_StartRemoteBootstrap", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_UnsafeChangeConfig", "bytes", KindCounter},
	{"service_response_bytes_yb_consensus_ConsensusService_UpdateConsensus", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_AddTransactionStatusTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_CheckIfPitrActive", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_CompactSysCatalog", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_CreateTransactionStatusTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_DdlLog", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_DeleteNotServingTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_DisableTabletSplitting", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_FlushSysCatalog", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_FlushTables", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_IsFlushTablesDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_IsInitDbDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_IsTabletSplittingComplete", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterAdmin_SplitTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackupService_CreateSnapshot", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackupService_CreateSnapshotSchedule", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackupService_DeleteSnapshot", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackupService_DeleteSnapshotSchedule", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackupService_ImportSnapshotMeta", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackupService_ListSnapshotRestorations", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackupService_ListSnapshotSchedules", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackupService_ListSnapshots", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackupService_RestoreSnapshot", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_CreateSnapshot", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_CreateSnapshotSchedule", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_DeleteSnapshot", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_DeleteSnapshotSchedule", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_EditSnapshotSchedule", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_ImportSnapshotMeta", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_ListSnapshotRestorations", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_ListSnapshotSchedules", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_ListSnapshots", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_RestoreSnapshot", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterBackup_RestoreSnapshotSchedule", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterClient_GetTableLocations", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterClient_GetTabletLocations", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterClient_GetTransactionStatusTablets", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterClient_GetYsqlCatalogConfig", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterClient_RedisConfigGet", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterClient_RedisConfigSet", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterClient_ReservePgsqlOids", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_AreLeadersOnPreferredOnly", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_ChangeLoadBalancerState", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_ChangeMasterClusterConfig", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_DumpState", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_GetAutoFlagsConfig", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_GetLeaderBlacklistCompletion", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_GetLoadBalancerState", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_GetLoadMoveCompletion", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_GetMasterClusterConfig", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_GetMasterRegistration", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_IsLoadBalanced", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_IsLoadBalancerIdle", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_IsMasterLeaderServiceReady", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_ListLiveTabletServers", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_ListMasterRaftPeers", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_ListMasters", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_ListTabletServers", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_PromoteAutoFlags", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_RemovedMasterUpdate", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterCluster_SetPreferredZones", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDcl_AlterRole", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDcl_CreateRole", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDcl_DeleteRole", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDcl_GetPermissions", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDcl_GrantRevokePermission", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDcl_GrantRevokeRole", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_AlterNamespace", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_AlterTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_BackfillIndex", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_CreateNamespace", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_CreateTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_CreateTablegroup", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_CreateUDType", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_DeleteNamespace", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_DeleteTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_DeleteTablegroup", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_DeleteUDType", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_GetBackfillJobs", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_GetColocatedTabletSchema", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_GetNamespaceInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_GetTableDiskSize", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_GetTableSchema", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_GetTablegroupSchema", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_GetUDTypeInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_IsAlterTableDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_IsCreateNamespaceDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_IsCreateTableDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_IsDeleteNamespaceDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_IsDeleteTableDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_IsTruncateTableDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_LaunchBackfillIndexForTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_ListNamespaces", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_ListTablegroups", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_ListTables", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_ListUDTypes", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterDdl_TruncateTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterEncryption_AddUniverseKeys", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterEncryption_ChangeEncryptionInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterEncryption_GetUniverseKeyRegistry", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterEncryption_HasUniverseKeyInMemory", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterEncryption_IsEncryptionEnabled", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterHeartbeat_TSHeartbeat", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_AlterUniverseReplication", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_ChangeXClusterRole", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_CreateCDCStream", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_DeleteCDCStream", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_DeleteUniverseReplication", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_GetCDCDBStreamInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_GetCDCStream", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_GetReplicationStatus", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_GetTableSchemaFromSysCatalog", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_GetUDTypeMetadata", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_GetUniverseReplication", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_GetXClusterEstimatedDataLoss", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_GetXClusterSafeTime", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_IsBootstrapRequired", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_IsSetupUniverseReplicationDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_ListCDCStreams", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_SetUniverseReplicationEnabled", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_SetupNSUniverseReplication", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_SetupUniverseReplication", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_UpdateCDCStream", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_UpdateConsumerOnProducerMetadata", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_UpdateConsumerOnProducerSplit", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_ValidateReplicationInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterReplication_WaitForReplicationDrain", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_AddUniverseKeys", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_AlterNamespace", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_AlterRole", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_AlterTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_AlterUniverseReplication", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_AreLoadersOnPreferredOnly", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_BackfillIndex", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ChangeEncryptionInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ChangeLoadBalancerState", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ChangeMasterClusterConfig", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_CreateCDCStream", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_CreateNamespace", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_CreateRole", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_CreateTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_CreateTablegroup", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_CreateTransactionStatusTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_CreateUDType", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_DdlLog", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_DeleteCDCStream", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_DeleteNamespace", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_DeleteNotServingTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_DeleteRole", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_DeleteTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_DeleteTablegroup", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_DeleteUDType", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_DeleteUniverseReplication", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_DumpState", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_FlushTables", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetBackfillJobs", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetCDCStream", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetColocatedTabletSchema", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetLeaderBlacklistCompletion", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetLoadBalancerState", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetLoadMoveCompletion", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetMasterClusterConfig", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetMasterRegistration", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetNamespaceInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetPermissions", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetTableLocations", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetTableSchema", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetTabletLocations", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetUDTypeInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetUniverseKeyRegistry", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetUniverseReplication", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GetYsqlCatalogConfig", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GrantRevokePermission", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_GrantRevokeRole", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_HasUniverseKeyInMemory", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsAlterTableDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsCreateNamespaceDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsCreateTableDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsDeleteNamespaceDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsDeleteTableDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsEncryptionEnabled", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsFlushTablesDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsInitDbDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsLoadBalanced", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsLoadBalancerIdle", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsMasterLeaderServiceReady", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_IsSetupUniverseReplicationDone", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_LaunchBackfillIndexForTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ListCDCStreams", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ListLiveTabletServers", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ListMasterRaftPeers", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ListMasters", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ListNamespaces", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ListTablegroups", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ListTables", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ListTabletServers", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ListUDType", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_RedisConfigGet", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_RedisConfigSet", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_RemovedMasterUpdate", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_ReservePgsqlOids", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_SetPreferredZones", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_SetUniverseReplication", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_SetupUniverseReplication", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_SplitTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_TSHeartbeat", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_TruncateTable", "bytes", KindCounter},
	{"service_response_bytes_yb_master_MasterService_UpdateCDCStream", "bytes", KindCounter},
	{"service_response_bytes_yb_server_GenericService_FlushCoverage", "bytes", KindCounter},
	{"service_response_bytes_yb_server_GenericService_GetAutoFlagsConfigVersion", "bytes", KindCounter},
	{"service_response_bytes_yb_server_GenericService_GetFlag", "bytes", KindCounter},
	{"service_response_bytes_yb_server_GenericService_GetStatus", "bytes", KindCounter},
	{"service_response_bytes_yb_server_GenericService_Ping", "bytes", KindCounter},
	{"service_response_bytes_yb_server_GenericService_RefreshFlags", "bytes", KindCounter},
	{"service_response_bytes_yb_server_GenericService_ReloadCertificates", "bytes", KindCounter},
	{"service_response_bytes_yb_server_GenericService_ServerClock", "bytes", KindCounter},
	{"service_response_bytes_yb_server_GenericService_SetFlag", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_AlterDatabase", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_AlterTable", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_BackfillIndex", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_CheckIfPitrActive", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_CreateDatabase", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_CreateSequencesDataTable", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_CreateTable", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_CreateTablegroup", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_DeleteDBSequences", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_DeleteSequenceTuple", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_DropDatabase", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_DropTable", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_DropTablegroup", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_FinishTransaction", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_GetCatalogMasterVersion", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_GetDatabaseInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_GetTableDiskSize", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_GetTserverCatalogVersionInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_Heartbeat", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_InsertSequenceTuple", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_IsInitDbDone", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_ListLiveTabletServers", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_OpenTable", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_Perform", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_ReadSequenceTuple", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_ReserveOids", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_RollbackToSubTransaction", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_SetActiveSubTransaction", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_TabletServerCount", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_TruncateTable", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_UpdateSequenceTuple", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_PgClientService_ValidatePlacement", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_BeginRemoteBootstrapSession", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_ChangePeerRole", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_CheckRemoteBootstrapSessionActive", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_CheckSessionActive", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_EndRemoteBootstrapSession", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_FetchData", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_KeepLogAnchorAlive", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_RegisterLogAnchor", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_RemoveRemoteBootstrapSession", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_RemoveSession", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_UnregisterLogAnchor", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_RemoteBootstrapService_UpdateLogAnchor", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_AddTableToTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_AlterSchema", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_BackfillDone", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_BackfillIndex", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_CopartitionTable", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_CountIntents", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_CreateTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_DeleteTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_FlushTablets", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_GetSafeTime", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_PrepareDeleteTransactionTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_RemoveTableFromTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_SplitTablet", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_TabletSnapshotOp", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_TestRetry", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_UpdateConsensus", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_UpdateTransactionTablesVersion", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerAdminService_UpgradeYsql", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerBackupService_TabletSnapshotOp", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_AbortTransaction", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_Checksum", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_GetLogLocation", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_GetMasterAddresses", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_GetSharedData", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_GetSplitKey", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_GetTabletStatus", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_GetTransactionStatus", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_GetTransactionStatusAtParticipant", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_GetTserverCatalogVersionInfo", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_ImportData", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_IsTabletServerReady", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_ListMasterServers", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_ListTablets", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_ListTabletsForTabletServer", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_NoOp", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_ProbeTransactionDeadlock", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_Publish", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_Read", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_TakeTransaction", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_Truncate", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_UpdateTransaction", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_UpdateTransactionStatusLocation", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_UpdateTransactionWaitingForStatus", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_VerifyTableRowRange", "bytes", KindCounter},
	{"service_response_bytes_yb_tserver_TabletServerService_Write", "bytes", KindCounter},
	{"snapshot_operations_inflight", "operations", KindGauge},
	{"spinlock_contention_time", "microseconds", KindCounter},
	{"split_operations_inflight", "operations", KindGauge},
	{"sys_catalog_peer_write_count", "entries", KindCounter},
	{"tablet_data_corruptions", "corruptions", KindCounter},
	{"tcmalloc_current_total_thread_cache_bytes", "bytes", KindGauge},
	{"tcmalloc_max_total_thread_cache_bytes", "bytes", KindGauge},
	{"tcmalloc_pageheap_free_bytes", "bytes", KindGauge},
	{"tcmalloc_pageheap_unmapped_bytes", "bytes", KindGauge},
	{"tcp_bytes_received", "bytes", KindCounter},
	{"tcp_bytes_sent", "bytes", KindCounter},
	{"threads_running", "threads", KindGauge},
	{"threads_running_CQLServer_reactor", "threads", KindGauge},
	{"threads_running_Master_reactor", "threads", KindGauge},
	{"threads_running_TabletServer_reactor", "threads", KindGauge},
	{"threads_running_acceptor", "threads", KindGauge},
	{"threads_running_catalog_manager", "threads", KindGauge},
	{"threads_running_heartbeater", "threads", KindGauge},
	{"threads_running_iotp_CQLServer", "threads", KindGauge},
	{"threads_running_iotp_Master", "threads", KindGauge},
	{"threads_running_iotp_TabletServer", "threads", KindGauge},
	{"threads_running_iotp_call_home", "threads", KindGauge},
	{"threads_running_maintenance", "threads", KindGauge},
	{"threads_running_pg_supervisor", "threads", KindGauge},
	{"threads_running_remote_bootstrap", "threads", KindGauge},
	{"threads_running_remote_maintenance", "threads", KindGauge},
	{"threads_running_rocksdb:high", "threads", KindGauge},
	{"threads_running_rpc_thread_pool", "threads", KindGauge},
	{"threads_running_tablet_manager", "threads", KindGauge},
	{"threads_running_tablet_split_manager", "threads", KindGauge},
	{"threads_running_thread_pool", "threads", KindGauge},
	{"threads_started", "threads", KindCounter},
	{"threads_started_CQLServer_reactor", "threads", KindCounter},
	{"threads_started_Master_reactor", "threads", KindCounter},
	{"threads_started_TabletServer_reactor", "threads", KindGauge},
	{"threads_started_acceptor", "threads", KindCounter},
	{"threads_started_auto_flags_client_reactor", "threads", KindCounter},
	{"threads_started_catalog_manager", "threads", KindCounter},
	{"threads_started_heartbeater", "threads", KindCounter},
	{"threads_started_iotp_CQLServer", "threads", KindCounter},
	{"threads_started_iotp_Master", "threads", KindCounter},
	{"threads_started_iotp_TabletServer", "threads", KindCounter},
	{"threads_started_iotp_auto_flags_client", "threads", KindCounter},
	{"threads_started_iotp_call_home", "threads", KindCounter},
	{"threads_started_maintenance", "threads", KindCounter},
	{"threads_started_pg_supervisor", "threads", KindCounter},
	{"threads_started_remote_bootstrap", "threads", KindCounter},
	{"threads_started_remote_maintenance", "threads", KindCounter},
	{"threads_started_rocksdb:high", "threads", KindGauge},
	{"threads_started_rpc_thread_pool", "threads", KindCounter},
	{"threads_started_tablet_manager", "threads", KindCounter},
	{"threads_started_tablet_split_manager", "threads", KindCounter},
	{"threads_started_thread_pool", "threads", KindCounter},
	{"transaction_conflicts", "transactions", KindCounter},
	{"transaction_load_attempts", "transactions", KindCounter},
	{"transaction_not_found", "transactions", KindCounter},
	{"transaction_pool_cache_hits", "hits", KindCounter},
	{"transaction_pool_cache_queries", "queries", KindCounter},
	{"transaction_pool_prepared", "transactions", KindGauge},
	{"transaction_pool_preparing", "transactions", KindGauge},
	{"transactions_running", "transactions", KindGauge},
	{"truncate_operations_inflight", "operations", KindGauge},
	{"ts_post_split_compaction_added", "requests", KindGauge},
	{"ts_split_compaction_added", "requests", KindGauge},
	{"ts_split_op_added", "operations", KindGauge},
	{"ts_split_op_apply", "operations", KindGauge},
	{"update_transaction_operations_inflight", "operations", KindGauge},
	{"voluntary_context_switches", "context switches", KindCounter},
	{"write_operations_inflight", "operations", KindGauge},
	{"yb_cqlserver_CQLServerService_ParsingErrors", "requests", KindCounter},
}
